package utils

import (
	"fmt"

	"barberbook/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes a Cloudinary client from the configured connection
// URL. Callers build the storage service on top of it.
func Cloudinary() (*cloudinary.Cloudinary, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return cld, nil
}
