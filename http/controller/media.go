package controller

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/advikbond/real-estate/entity"
	"github.com/advikbond/real-estate/http/controller/dto"
	"github.com/advikbond/real-estate/utils"
)

const (
	// MaxMediaFiles is the upper bound on files per upload request.
	MaxMediaFiles = 10
	// MaxMediaFileSize is the per-file size limit (10MB).
	MaxMediaFileSize int64 = 10 * 1024 * 1024
)

// UploadMedia stages each uploaded file on local disk, forwards its bytes to
// the object store under projectId/filename, records a media_files row with
// the public URL, then removes the staged copy. All files are validated
// before the first byte reaches storage; after that, processing stops at the
// first failure and files already committed stay committed (no rollback).
func (ctrl *Controller) UploadMedia(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Media] Invalid projectId format: %v", err)
		utils.JSON400(c, "Invalid projectId format")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Media] Failed to parse multipart form: %v", err)
		utils.JSON400(c, "Failed to parse multipart form: "+err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Media] No files in upload request for project %s", projectID)
		utils.JSON400(c, "No files uploaded")
		return
	}

	if len(files) > MaxMediaFiles {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Media] Too many files (%d) for project %s", len(files), projectID)
		utils.JSON400(c, fmt.Sprintf("Too many files: at most %d per upload", MaxMediaFiles))
		return
	}

	for _, fileHeader := range files {
		if msg := validateMediaFile(fileHeader); msg != "" {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Media] Rejected file '%s': %s", fileHeader.Filename, msg)
			utils.JSON400(c, msg)
			return
		}
	}

	uploadedFiles := make([]dto.UploadedFileDTO, 0, len(files))

	for _, fileHeader := range files {
		contentType := fileHeader.Header.Get("Content-Type")
		stagedName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
		stagedPath := filepath.Join(ctrl.Config.EnvConfig.Upload.Dir, stagedName)

		if err := c.SaveUploadedFile(fileHeader, stagedPath); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Media] Failed to stage file '%s': %v", fileHeader.Filename, err)
			utils.JSON500(c, "Failed to stage uploaded file")
			return
		}

		data, err := os.ReadFile(stagedPath)
		if err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Media] Failed to read staged file '%s': %v", stagedPath, err)
			utils.JSON500(c, "Failed to read staged file")
			return
		}

		key := projectID.String() + "/" + stagedName
		if err := ctrl.Storage.UploadObject(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Media] Storage upload failed for '%s': %v", fileHeader.Filename, err)
			utils.JSON500(c, "Failed to upload file to storage")
			return
		}

		fileURL := ctrl.Storage.ObjectURL(key)

		mediaFile := &entity.MediaFile{
			ID:           uuid.New(),
			ProjectID:    projectID,
			Filename:     stagedName,
			OriginalName: fileHeader.Filename,
			FileType:     contentType,
			FileSize:     fileHeader.Size,
			FilePath:     key,
			FileURL:      fileURL,
			CreatedAt:    time.Now().UTC(),
		}

		if err := ctrl.Repository.MediaFileRepo.Create(mediaFile); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Media] Failed to save media file row for '%s': %v", fileHeader.Filename, err)
			utils.JSON500(c, "Failed to save media file record")
			return
		}

		uploadedFiles = append(uploadedFiles, dto.UploadedFileDTO{
			ID:           mediaFile.ID,
			Filename:     stagedName,
			OriginalName: fileHeader.Filename,
			Type:         contentType,
			Size:         fileHeader.Size,
			URL:          fileURL,
		})

		if err := os.Remove(stagedPath); err != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Media] Failed to remove staged file '%s': %v", stagedPath, err)
		}
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Media] Uploaded %d files for project %s", len(uploadedFiles), projectID)
	utils.JSON200(c, gin.H{
		"success": true,
		"message": "Media files uploaded successfully",
		"files":   uploadedFiles,
	})
}

// validateMediaFile returns an error message for files that must be
// rejected, or "" when the file is acceptable.
func validateMediaFile(fileHeader *multipart.FileHeader) string {
	if fileHeader.Size > MaxMediaFileSize {
		return "File too large"
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return "Only image and video files are allowed"
	}

	return ""
}
