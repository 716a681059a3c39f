package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/webp"
	"github.com/labstack/echo/v4"

	"straysense/pkg/utils"
	"straysense/pkg/vision"
)

const maxUploadBytes = 10 << 20

const manualEntryMsg = "auto-extraction unavailable, use manual entry"

// POST /api/vision
func (s *Server) handlePostVision(c echo.Context) error {
	if s.Extractor == nil {
		return c.JSON(http.StatusServiceUnavailable, utils.ErrJSON(manualEntryMsg))
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds 10MB limit")
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image upload")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil || len(data) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image upload")
	}
	if len(data) > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds 10MB limit")
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "upload must be an image")
	}

	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	s.uploads.Store(key, upload{data: data, mimeType: mimeType})
	defer s.uploads.Delete(key)

	var result *vision.Result
	if c.QueryParam("force") != "" {
		result, err = s.visionFlight.Force(key)
	} else {
		result, err = s.visionFlight.Get(key)
	}
	if err != nil {
		log.Error("visual signal extraction failed", "key", key[:12], "error", err)
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(manualEntryMsg))
	}

	archived, err := s.archiveIntakePhoto(data, key)
	if err != nil {
		log.Warn("failed to archive intake photo", "key", key[:12], "error", err)
	}

	log.Info("visual signals extracted", "key", key[:12], "confidence", result.Confidence)
	return c.JSON(http.StatusOK, map[string]any{
		"result":   result,
		"signals":  result.Signals(),
		"archived": archived,
	})
}

// extractUpload is the flight-cache work function: concurrent uploads of the
// same image share one model call.
func (s *Server) extractUpload(key string) (*vision.Result, error) {
	up, ok := s.uploads.Load(key)
	if !ok {
		return nil, fmt.Errorf("upload %s no longer available", key[:12])
	}
	return s.Extractor.Extract(s.Ctx, up.data, up.mimeType)
}

// archiveIntakePhoto re-encodes the upload as WebP under the image dir so
// every report's documentation directive has a photo to point at.
func (s *Server) archiveIntakePhoto(data []byte, key string) (string, error) {
	dir := filepath.Join(s.ImageDir, "intake")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create image dir: %w", err)
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Lossless: false, Quality: 90}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	filename := utils.SanitizeFilename(key[:16]) + ".webp"
	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}
	return filename, nil
}
