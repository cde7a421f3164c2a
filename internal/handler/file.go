package handler

import (
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FileHandler serves multipart upload routes.
type FileHandler struct {
	Handler
	uploadService *service.UploadService
}

func NewFileHandler(s *server.Server, uploadService *service.UploadService) *FileHandler {
	return &FileHandler{
		Handler:       NewHandler(s),
		uploadService: uploadService,
	}
}

func (h *FileHandler) PostImage(c echo.Context, req *model.ImageUpload) (model.ImageOut, error) {
	out, err := h.uploadService.Describe(c.Request().Context(), req.Image)
	if err != nil {
		return model.ImageOut{}, err
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute("file.name", out.Filename)
		txn.AddAttribute("file.content_type", out.Format)
		txn.AddAttribute("file.size_kb", out.SizeKb)
	}

	return out, nil
}
