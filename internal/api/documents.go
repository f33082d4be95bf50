package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// RegisterDocumentRoutes exposes the configured documents directory
// read-only under /documents (resumes, certificates). /documents/debug
// lists what the server actually sees in the directory, which is handy
// when chasing 404s from the client.
func RegisterDocumentRoutes(r *gin.Engine, dir string) {
	r.GET("/documents/debug", func(c *gin.Context) {
		files := []string{}
		entries, err := os.ReadDir(dir)
		if err == nil {
			for _, entry := range entries {
				if !entry.IsDir() {
					files = append(files, entry.Name())
				}
			}
		}
		c.JSON(http.StatusOK, gin.H{"folder": dir, "files": files})
	})

	r.GET("/documents/:name", func(c *gin.Context) {
		// Base strips any path traversal from the requested name.
		name := filepath.Base(c.Param("name"))
		full := filepath.Join(dir, name)

		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.File(full)
	})
}
