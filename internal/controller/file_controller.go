package controller

import (
	"path/filepath"
	"strings"

	"github.com/Raam751/ClassPulse/internal/service"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
}

type FileController struct {
	Storage *service.StorageService
}

func NewFileController(storage *service.StorageService) *FileController {
	return &FileController{Storage: storage}
}

func (c *FileController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	if fileHeader.Size > maxUploadSize {
		util.BadRequest(ctx, "file exceeds the 5MB limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		util.BadRequest(ctx, "file type not allowed: "+ext)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := uuid.New().String() + ext
	url, err := c.Storage.Provider.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"filename": filename, "url": url})
}

func (c *FileController) Download(ctx *gin.Context) {
	filename := filepath.Base(ctx.Param("filename"))

	reader, err := c.Storage.Provider.Fetch(ctx.Request.Context(), filename)
	if err != nil {
		util.NotFound(ctx, "file not found: "+filename)
		return
	}
	defer reader.Close()

	ctx.DataFromReader(200, -1, "application/octet-stream", reader, map[string]string{
		"Content-Disposition": `attachment; filename="` + filename + `"`,
	})
}

func (c *FileController) Delete(ctx *gin.Context) {
	filename := filepath.Base(ctx.Param("filename"))

	if err := c.Storage.Provider.Delete(ctx.Request.Context(), filename); err != nil {
		util.NotFound(ctx, "file not found: "+filename)
		return
	}

	util.NoContent(ctx)
}
