package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"tuitionku_backend/internals/configs"
)

// Upload ceiling for the institute logo (matches the dashboard's 5MB rule).
const maxUploadSize = int64(5 * 1024 * 1024)

const (
	logoMaxW    = 1600
	logoMaxH    = 1600
	webpQuality = 80
)

func newBucket() (*oss.Bucket, error) {
	if configs.OSSBucket == "" {
		return nil, fmt.Errorf("OSS is not configured")
	}
	client, err := oss.New(configs.OSSEndpoint, configs.OSSAccessKey, configs.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return client.Bucket(configs.OSSBucket)
}

func publicURL(objectKey string) string {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(configs.OSSEndpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", configs.OSSBucket, endpoint, objectKey)
}

/* =======================================================================
   Decode (jpeg/png/webp) with MIME sniff, extension fallback
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

// ValidateImageUpload rejects a file before any network call: image MIME
// types only, 5MB ceiling.
func ValidateImageUpload(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("no file provided")
	}
	if fh.Size > maxUploadSize {
		return fmt.Errorf("image size should be less than 5MB")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := f.Read(head)
	ct := http.DetectContentType(head[:n])
	if !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("please upload an image file")
	}
	return nil
}

// UploadLogoWebP converts the uploaded image to WebP (resized to fit
// 1600x1600, keep aspect) and stores it under logos/, returning the public
// URL.
func UploadLogoWebP(fh *multipart.FileHeader) (string, error) {
	if err := ValidateImageUpload(fh); err != nil {
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(f); err != nil {
		return "", err
	}

	img, err := decodeImage(buf.Bytes(), fh.Filename)
	if err != nil {
		return "", err
	}

	b := img.Bounds()
	if b.Dx() > logoMaxW || b.Dy() > logoMaxH {
		img = imaging.Fit(img, logoMaxW, logoMaxH, imaging.CatmullRom)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	bucket, err := newBucket()
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("logos/%s.webp", uuid.NewString())
	if err := bucket.PutObject(objectKey, bytes.NewReader(out.Bytes()),
		oss.ContentType("image/webp")); err != nil {
		return "", err
	}
	return publicURL(objectKey), nil
}

// DeleteByPublicURL removes a previously uploaded object. A malformed or
// foreign URL is ignored rather than failing the caller's flow.
func DeleteByPublicURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	objectKey := strings.TrimPrefix(u.Path, "/")
	if objectKey == "" {
		return nil
	}
	bucket, err := newBucket()
	if err != nil {
		return err
	}
	return bucket.DeleteObject(objectKey)
}
