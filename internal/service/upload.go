package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"mime/multipart"

	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
)

type UploadService struct {
	server *server.Server
}

func NewUploadService(s *server.Server) *UploadService {
	return &UploadService{
		server: s,
	}
}

// Describe reads the uploaded file once to measure it and discards it.
//
// The size is reported in kilobytes rounded to two decimals.
func (s *UploadService) Describe(ctx context.Context, image *multipart.FileHeader) (model.ImageOut, error) {
	file, err := image.Open()
	if err != nil {
		return model.ImageOut{}, fmt.Errorf("opening upload %q: %w", image.Filename, err)
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil {
		return model.ImageOut{}, fmt.Errorf("reading upload %q: %w", image.Filename, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("filename", image.Filename).
		Int64("size_bytes", size).
		Msg("upload measured")

	return model.ImageOut{
		Filename: image.Filename,
		Format:   image.Header.Get("Content-Type"),
		SizeKb:   math.Round(float64(size)/1024*100) / 100, // halves round away from zero
	}, nil
}
