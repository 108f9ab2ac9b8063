package api

import (
	"ecommerce-dashboard/internal/api/handler"
	"ecommerce-dashboard/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "ecommerce-dashboard/docs"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/healthz", h.Health)
	r.GET("/api/v1/reports", h.ListReports)
	r.GET(handler.ReportPath, h.GetReport)
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
