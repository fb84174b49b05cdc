package batch

import (
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docproc-backend/internal/pipeline"
	"docproc-backend/internal/shared/server/respond"
	"docproc-backend/internal/shared/storage/object"
	"docproc-backend/internal/shared/telemetry"
	"docproc-backend/internal/shared/util"
)

// Handler accepts multipart batch uploads and runs them through the
// pipeline. Archive is optional: when nil, originals are not retained after
// processing.
type Handler struct {
	Processor *pipeline.Processor
	Archive   object.ObjectStore
	MaxBytes  int64
}

type batchResponse struct {
	BatchID string           `json:"batchId"`
	Results []pipeline.Entry `json:"results"`
}

// RegisterRoutes mounts the batch endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/batch", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	if h.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart request", nil)
		return
	}
	files := form.File["files[]"]
	if len(files) == 0 {
		files = form.File["files"]
	}

	pdfs := make([]*multipart.FileHeader, 0, len(files))
	for _, fh := range files {
		if strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
			pdfs = append(pdfs, fh)
		}
	}
	if len(pdfs) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no PDF files in request", nil)
		return
	}

	batchID := uuid.NewString()
	scratch, err := os.MkdirTemp("", "batch-*")
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to stage batch", nil)
		return
	}
	defer os.RemoveAll(scratch)

	paths := make([]string, 0, len(pdfs))
	for _, fh := range pdfs {
		name, err := util.SanitizeFileName(fh.Filename)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", gin.H{"file": fh.Filename})
			return
		}
		dst := filepath.Join(scratch, name)
		if err := c.SaveUploadedFile(fh, dst); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read uploaded file", gin.H{"file": name})
			return
		}
		h.archive(c.Request.Context(), batchID, name, dst)
		paths = append(paths, dst)
	}

	telemetry.Info("batch.received", map[string]any{
		"batch_id": batchID,
		"files":    len(paths),
	})

	results := h.Processor.ProcessBatch(c.Request.Context(), paths)
	respond.OK(c, batchResponse{BatchID: batchID, Results: results})
}

// archive copies the staged file into the object store. Best effort: a
// failed archive is logged, never surfaced to the caller.
func (h *Handler) archive(ctx context.Context, batchID, name, path string) {
	if h.Archive == nil {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		telemetry.Warn("batch.archive.failed", map[string]any{"file": name, "err": err.Error()})
		return
	}
	defer f.Close()
	if _, _, _, err := h.Archive.Save(ctx, batchID, name, f); err != nil {
		telemetry.Warn("batch.archive.failed", map[string]any{"file": name, "err": err.Error()})
	}
}
