package main

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

const (
	maxImageSize    = 1 * 1024 * 1024
	maxDocumentSize = 2 * 1024 * 1024
	thumbnailWidth  = 128
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
}

func readUploadedFile(fileHeader *multipart.FileHeader, maxSize int64, allowedTypes map[string]bool) ([]byte, string, error) {

	if fileHeader.Size > maxSize {
		return nil, "", utils.NewValidationError("file", "File size exceeds limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		return nil, "", utils.NewValidationError("file", "File type "+contentType+" not allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(data)) > maxSize {
		return nil, "", utils.NewValidationError("file", "File size exceeds limit")
	}

	return data, contentType, nil
}

func uploadLogoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		data, contentType, err := readUploadedFile(fileHeader, maxImageSize, allowedImageTypes)
		if err != nil {
			respondError(c, err)
			return
		}

		filename := utils.SanitizeFilename(fileHeader.Filename)
		fileUrl, err := utils.SaveUploadBytes(c.Request.Context(), "logos", filename, data, contentType)
		if err != nil {
			respondError(c, err)
			return
		}

		// Thumbnail is best-effort; the original logo is already stored.
		if thumbUrl, err := createLogoThumbnail(c, filename, data); err != nil {
			config.LogError(config.GetLogger(), "uploads.go", "uploadLogoHandler", "createLogoThumbnail", filename, err)
		} else {
			c.JSON(http.StatusOK, gin.H{
				"success":       true,
				"file_url":      fileUrl,
				"thumbnail_url": thumbUrl,
				"filename":      fileHeader.Filename,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"file_url": fileUrl,
			"filename": fileHeader.Filename,
		})
	}
}

func createLogoThumbnail(c *gin.Context, filename string, data []byte) (string, error) {

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	thumbnail := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG); err != nil {
		return "", err
	}

	ext := filepath.Ext(filename)
	thumbName := strings.TrimSuffix(filename, ext) + "_thumb.jpg"
	return utils.SaveUploadBytes(c.Request.Context(), "logos", thumbName, buf.Bytes(), "image/jpeg")
}

func uploadDocumentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		docType := c.DefaultPostForm("doc_type", "general")

		data, contentType, err := readUploadedFile(fileHeader, maxDocumentSize, allowedDocumentTypes)
		if err != nil {
			respondError(c, err)
			return
		}

		filename := utils.SanitizeFilename(fileHeader.Filename)
		fileUrl, err := utils.SaveUploadBytes(c.Request.Context(), "documents/"+docType, filename, data, contentType)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"file_url": fileUrl,
			"filename": fileHeader.Filename,
			"doc_type": docType,
		})
	}
}

func uploadMultipleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "files are required"})
			return
		}
		docType := c.DefaultPostForm("doc_type", "general")

		uploaded := make([]gin.H, 0, len(files))
		for _, fileHeader := range files {
			data, contentType, err := readUploadedFile(fileHeader, maxDocumentSize, allowedDocumentTypes)
			if err != nil {
				respondError(c, err)
				return
			}
			filename := utils.SanitizeFilename(fileHeader.Filename)
			fileUrl, err := utils.SaveUploadBytes(c.Request.Context(), "documents/"+docType, filename, data, contentType)
			if err != nil {
				respondError(c, err)
				return
			}
			uploaded = append(uploaded, gin.H{
				"file_url": fileUrl,
				"filename": fileHeader.Filename,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"files":   uploaded,
			"count":   len(uploaded),
		})
	}
}

func deleteFileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileUrl := c.Query("file_url")
		if fileUrl == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_url is required"})
			return
		}

		deleted, err := utils.DeleteStoredFile(c.Request.Context(), fileUrl)
		if err != nil {
			respondError(c, err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "File deleted successfully",
		})
	}
}

func registerFileRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload/logo", uploadLogoHandler())
	rg.POST("/upload/document", uploadDocumentHandler())
	rg.POST("/upload/multiple", uploadMultipleHandler())
	rg.DELETE("/delete", deleteFileHandler())
}
