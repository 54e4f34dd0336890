package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"gym-manager/backend/internal/httpjson"
)

const (
	uploadFolder  = "gym-pro-app"
	maxUploadSize = 10 << 20 // 10 MiB
)

// Uploader pushes multipart image uploads to Cloudinary and hands the
// caller back the hosted URL.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func NewUploader(cloudName, apiKey, apiSecret string) (*Uploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Uploader{cld: cld}, nil
}

// UploadImage accepts a multipart form with an "image" field and responds
// with {"secure_url": ...}.
func (u *Uploader) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "expected multipart form with an image field")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "image field is required")
		return
	}
	defer file.Close()

	res, err := u.cld.Upload.Upload(r.Context(), file, uploader.UploadParams{
		Folder:       uploadFolder,
		ResourceType: "image",
	})
	if err != nil {
		log.Printf("image upload failed: %v", err)
		httpjson.Error(w, http.StatusInternalServerError, "Image upload failed.")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"secure_url": res.SecureURL})
}
