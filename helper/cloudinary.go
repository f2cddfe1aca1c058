package helper

import (
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"

	"github.com/huyi122/Ticket-Master/config"
)

var ErrCloudNotConfigured = errors.New("cloud backup is not configured")

// InitCloudinary builds the cloud storage client from the environment.
// Missing credentials are a normal condition (cloud backup is optional),
// reported as ErrCloudNotConfigured so callers can fall back to local-only.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	name := config.Config("CLOUDINARY_CLOUD_NAME")
	key := config.Config("CLOUDINARY_API_KEY")
	secret := config.Config("CLOUDINARY_API_SECRET")
	if name == "" || key == "" || secret == "" {
		return nil, ErrCloudNotConfigured
	}

	cld, err := cloudinary.NewFromParams(name, key, secret)
	if err != nil {
		return nil, err
	}
	return cld, nil
}
