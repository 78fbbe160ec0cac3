// Package job contains the scheduled maintenance jobs run by the web server.
package job

import (
	"os"
	"path/filepath"
	"time"

	"github.com/vaiicko/cafe-web/config"
	"github.com/vaiicko/cafe-web/database"
	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/logger"
)

// minOrphanAge keeps freshly stored files out of the sweep so an upload is
// never reaped between being written and its row being saved.
const minOrphanAge = 24 * time.Hour

// OrphanUploadJob removes upload files no menu item or drink references
// anymore. Deletes are best-effort file removals; rows are never touched.
type OrphanUploadJob struct{}

func NewOrphanUploadJob() *OrphanUploadJob {
	return new(OrphanUploadJob)
}

func (j *OrphanUploadJob) Run() {
	referenced, err := j.referencedFiles()
	if err != nil {
		logger.Warning("orphan sweep: collecting references failed:", err)
		return
	}

	dir := config.GetUploadFolder()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warning("orphan sweep: reading upload folder failed:", err)
		}
		return
	}

	cutoff := time.Now().Add(-minOrphanAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			logger.Warningf("orphan sweep: could not remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	if removed > 0 {
		logger.Infof("orphan sweep removed %d unreferenced upload(s)", removed)
	}
}

func (j *OrphanUploadJob) referencedFiles() (map[string]bool, error) {
	db := database.GetDB()
	referenced := make(map[string]bool)

	var paths []string
	if err := db.Model(model.MenuItem{}).Where("picture IS NOT NULL").Pluck("picture", &paths).Error; err != nil {
		return nil, err
	}
	var drinkPaths []string
	if err := db.Model(model.Drink{}).Where("picture IS NOT NULL").Pluck("picture", &drinkPaths).Error; err != nil {
		return nil, err
	}

	for _, p := range append(paths, drinkPaths...) {
		referenced[filepath.Base(p)] = true
	}
	return referenced, nil
}
