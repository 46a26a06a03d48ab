package routes

import (
	"warsto_quotation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI             = "/api"
	PathPing            = "/ping"
	PathOptions         = "/options/:bhkType"
	PathAddCustomOption = "/addCustomOption"
	PathSubmit          = "/submit"
	PathQuotation       = "/quotation/:id"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addQuotationRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, quotationHandler *handlers.QuotationHandler) {
	rg.GET(PathOptions, catalogHandler.GetOptions)
	rg.POST(PathAddCustomOption, catalogHandler.AddCustomOption)

	rg.POST(PathSubmit, quotationHandler.Submit)
	rg.GET(PathQuotation, quotationHandler.GetQuotation)
}
