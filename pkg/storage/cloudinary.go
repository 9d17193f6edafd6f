package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"naija-barter/pkg/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores an uploaded file and returns its public URL.
type Uploader interface {
	UploadFromHeader(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(config utils.CloudinaryConfig) (Uploader, error) {
	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}

	return &cloudinaryUploader{cld: cld}, nil
}

func (u *cloudinaryUploader) UploadFromHeader(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}

	return result.SecureURL, nil
}
