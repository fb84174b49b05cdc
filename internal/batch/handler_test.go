package batch

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"docproc-backend/internal/classify"
	"docproc-backend/internal/documents"
	"docproc-backend/internal/persons"
	"docproc-backend/internal/pipeline"
)

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func newTestHandler(docs *documents.MemoryRepo) *Handler {
	return &Handler{
		Processor: &pipeline.Processor{
			Classifier:  classify.New(),
			Documents:   docs,
			Persons:     persons.NewMemoryRepo(),
			ExtractText: func(string) string { return "invoice total $10.00" },
		},
	}
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		part, err := w.CreateFormFile("files[]", name)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestBatchUploadMixedResults(t *testing.T) {
	docs := documents.NewMemoryRepo()
	r := newTestRouter(newTestHandler(docs))

	body, contentType := multipartBody(t, map[string][]byte{
		"good.pdf":   []byte("%PDF-1.4\nx"),
		"broken.pdf": []byte("plain text, no header"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		BatchID string           `json:"batchId"`
		Results []pipeline.Entry `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.BatchID == "" {
		t.Error("expected batchId")
	}
	if len(resp.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(resp.Results))
	}

	byFile := map[string]pipeline.Entry{}
	for _, e := range resp.Results {
		byFile[e.File] = e
	}
	if e := byFile["good.pdf"]; e.Status != "success" || e.Result == nil || e.Result.DocType != "Invoice" {
		t.Errorf("good.pdf entry: %+v", e)
	}
	if e := byFile["broken.pdf"]; e.Status != "error" || e.Error == "" {
		t.Errorf("broken.pdf entry: %+v", e)
	}
	if docs.Len() != 1 {
		t.Errorf("persisted documents = %d, want 1", docs.Len())
	}
}

func TestBatchUploadFiltersNonPDFNames(t *testing.T) {
	r := newTestRouter(newTestHandler(documents.NewMemoryRepo()))

	body, contentType := multipartBody(t, map[string][]byte{
		"notes.txt": []byte("plain"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBatchUploadRejectsEmptyForm(t *testing.T) {
	r := newTestRouter(newTestHandler(documents.NewMemoryRepo()))

	body, contentType := multipartBody(t, map[string][]byte{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBatchUploadRejectsTraversalNames(t *testing.T) {
	r := newTestRouter(newTestHandler(documents.NewMemoryRepo()))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("files[]", "../../etc/evil.pdf")
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4\nx")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/batch", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
