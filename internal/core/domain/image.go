package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
)

const MaxImageSize = 5 << 20

var (
	ErrImageType     = errors.New("only JPG, PNG, WEBP and GIF images are accepted")
	ErrImageTooLarge = fmt.Errorf("image must not exceed %dMB", MaxImageSize>>20)
)

var imageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/gif",
}

type Image struct {
	ContentType string
	Data        []byte
}

func (img Image) Validate() error {
	switch {
	case len(img.Data) == 0:
		return ErrImageRequired
	case !slices.Contains(imageTypes, img.ContentType):
		return ErrImageType
	case len(img.Data) > MaxImageSize:
		return ErrImageTooLarge
	}
	return nil
}

// DataURI embeds the image as base64 text.
func (img Image) DataURI() string {
	return "data:" + img.ContentType + ";base64," +
		base64.StdEncoding.EncodeToString(img.Data)
}
