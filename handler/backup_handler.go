package handler

import (
	"weekplanner/storage"
	"weekplanner/utils"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	backups *storage.BackupManager
}

func NewBackupHandler(backups *storage.BackupManager) *BackupHandler {
	return &BackupHandler{backups: backups}
}

func (h *BackupHandler) Create(c *gin.Context) {
	info, err := h.backups.CreateBackup()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, info)
}

func (h *BackupHandler) List(c *gin.Context) {
	utils.Success(c, h.backups.ListBackups())
}

// Restore replaces the whole document with a named backup's contents.
func (h *BackupHandler) Restore(c *gin.Context) {
	name := c.Param("name")
	if err := h.backups.RestoreBackup(name); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"restored": name})
}
