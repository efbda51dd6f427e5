package handlers

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	totalFolders = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pixfold_total_folders",
		Help: "Total number of folders",
	})

	totalImages = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pixfold_total_images",
		Help: "Total number of stored images",
	})

	storedImageBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pixfold_stored_image_bytes",
		Help: "Summed size in bytes of all stored images",
	})
)

func init() {
	prometheus.MustRegister(totalFolders)
	prometheus.MustRegister(totalImages)
	prometheus.MustRegister(storedImageBytes)
}

// updateMetrics refreshes all gauges from current database values.
func updateMetrics() {
	if count, err := store.GetTotalFolders(); err == nil {
		totalFolders.Set(float64(count))
	} else {
		log.Warnf("Failed to get total folders for metrics: %v", err)
	}

	if count, err := store.GetTotalFiles(); err == nil {
		totalImages.Set(float64(count))
	} else {
		log.Warnf("Failed to get total images for metrics: %v", err)
	}

	if total, err := store.GetTotalFileBytes(); err == nil {
		storedImageBytes.Set(float64(total))
	} else {
		log.Warnf("Failed to get stored image bytes for metrics: %v", err)
	}
}

// HandleMetrics serves Prometheus metrics.
func HandleMetrics(c *fiber.Ctx) error {
	updateMetrics()
	return adaptor.HTTPHandler(promhttp.Handler())(c)
}

// HandleHealth reports process liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": serverVersion})
}

// HandleReady reports whether the database connection is usable.
func HandleReady(c *fiber.Ctx) error {
	if err := store.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
