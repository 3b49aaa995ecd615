package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"fundsim/internal/api/models"
	"fundsim/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// SectorHandler serves the sector preset catalogue
type SectorHandler struct {
	sectorDir string
}

// NewSectorHandler creates a new sector handler
func NewSectorHandler() *SectorHandler {
	dir := sectorDir()
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	log.Printf("SectorHandler: using sector directory: %s", dir)
	return &SectorHandler{sectorDir: dir}
}

// ListSectors handles GET /api/v1/sectors
func (h *SectorHandler) ListSectors(c *gin.Context) {
	sectors := []models.SectorInfo{}

	entries, err := os.ReadDir(h.sectorDir)
	if err != nil {
		log.Printf("SectorHandler: failed to read sector directory %s: %v", h.sectorDir, err)
		c.JSON(http.StatusOK, gin.H{"sectors": sectors})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.sectorDir, entry.Name())
		info, err := h.loadSectorInfo(path, entry.Name())
		if err != nil {
			log.Printf("SectorHandler: failed to load sector file %s: %v", path, err)
			continue // Skip invalid files
		}
		sectors = append(sectors, *info)
	}

	c.JSON(http.StatusOK, gin.H{"sectors": sectors})
}

func (h *SectorHandler) loadSectorInfo(path, filename string) (*models.SectorInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Policy config.PolicyConfig `yaml:"policy"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	// The filename without extension is the preset ID ("industry.yaml" -> "industry").
	id := strings.TrimSuffix(filename, ".yaml")
	name := wrapper.Policy.Name
	if name == "" {
		name = id
	}

	return &models.SectorInfo{
		ID:   id,
		Name: name,
		File: path,
		Defaults: models.SectorSpecs{
			ProjectValue:        wrapper.Policy.ProjectValue,
			AbatementTonnesCO2e: wrapper.Policy.AbatementTonnesCO2e,
			DemandElasticity:    wrapper.Policy.DemandElasticity,
		},
	}, nil
}
