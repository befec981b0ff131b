package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mplus-labs/bonsai-api/internal/models"
	"github.com/mplus-labs/bonsai-api/internal/storage"
)

// RegisterFileRoutes wires upload, listing and deletion of user files.
func RegisterFileRoutes(rg *gin.RouterGroup, db *gorm.DB, store *storage.Disk, logger *slog.Logger) {
	rg.POST("/upload", func(c *gin.Context) { uploadFile(c, db, store) })
	rg.GET("", func(c *gin.Context) { listFiles(c, db) })
	rg.DELETE("/:id", func(c *gin.Context) { deleteFile(c, db, store, logger) })
}

// uploadFile streams the multipart payload to disk, then inserts the
// metadata row. The two steps are all-or-nothing: a failed write leaves no
// row, and a failed insert removes the blob it just wrote.
func uploadFile(c *gin.Context, db *gorm.DB, store *storage.Disk) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	path, size, err := store.Save(fh.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	file := models.File{
		UserID:      currentUserID(c),
		Name:        fh.Filename,
		SizeBytes:   size,
		MimeType:    fh.Header.Get("Content-Type"),
		StoragePath: path,
	}
	if err := db.Create(&file).Error; err != nil {
		_ = store.Remove(path)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "storage path already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, file)
}

func listFiles(c *gin.Context, db *gorm.DB) {
	files := []models.File{}
	if err := db.Where("user_id = ?", currentUserID(c)).Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, files)
}

// deleteFile removes the metadata row, then the blob. A blob that cannot
// be removed after the row is gone is an orphan: logged and tolerated,
// the delete still counts.
func deleteFile(c *gin.Context, db *gorm.DB, store *storage.Disk, logger *slog.Logger) {
	var file models.File
	if err := db.First(&file, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	if err := db.Delete(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := store.Remove(file.StoragePath); err != nil {
		logger.Warn("orphaned blob after file delete",
			"file_id", file.ID, "path", file.StoragePath, "error", err)
	}
	c.Status(http.StatusNoContent)
}
