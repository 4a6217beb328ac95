package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageService wrapper cloudinary untuk upload dan hapus gambar
type ImageService struct {
	cld *cloudinary.Cloudinary
}

func NewImageService(cld *cloudinary.Cloudinary) *ImageService {
	return &ImageService{cld: cld}
}

// Upload unggah file ke folder cloudinary, kembalikan secure URL
func (s *ImageService) Upload(ctx context.Context, file multipart.File, folder string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// Delete hapus gambar berdasarkan URL yang pernah dikembalikan Upload.
// Best-effort: pemanggil yang memutuskan apakah error fatal.
func (s *ImageService) Delete(ctx context.Context, url string) error {
	publicID, err := PublicIDFromURL(url)
	if err != nil {
		return err
	}

	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, resp.Result)
	}
	return nil
}

var versionSegment = regexp.MustCompile(`^v[0-9]+$`)

// PublicIDFromURL ekstrak public ID dari secure URL cloudinary,
// misalnya .../image/upload/v12345/promos/abc.png -> promos/abc
func PublicIDFromURL(url string) (string, error) {
	_, after, found := strings.Cut(url, "/upload/")
	if !found || after == "" {
		return "", fmt.Errorf("bukan URL cloudinary: %s", url)
	}

	parts := strings.Split(after, "/")
	if len(parts) > 1 && versionSegment.MatchString(parts[0]) {
		parts = parts[1:]
	}

	publicID := strings.Join(parts, "/")
	if idx := strings.LastIndex(publicID, "."); idx > 0 {
		publicID = publicID[:idx]
	}
	if publicID == "" {
		return "", fmt.Errorf("public ID kosong dari URL: %s", url)
	}
	return publicID, nil
}
