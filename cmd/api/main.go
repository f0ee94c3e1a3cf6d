package main

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/teakimm/express-biztime/internal/domain/sqlite"
	"github.com/teakimm/express-biztime/internal/domain/sqlite/repository"
	"github.com/teakimm/express-biztime/internal/http/handler"
	"github.com/teakimm/express-biztime/internal/service"
	"github.com/teakimm/express-biztime/internal/utils/apierror"
)

const envVarsPrefix = "/biztime/prod/"

func main() {
	validate := validator.New()

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "biztime.db"
	}

	// Init SQLite
	db, err := sqlite.Init(dbPath)
	if err != nil {
		panic(err)
	}

	// Getting repos
	companyRepo := repository.NewCompanyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	// Getting services
	companyService := service.NewCompanyService(companyRepo, invoiceRepo, validate)
	invoiceService := service.NewInvoiceService(invoiceRepo, companyRepo, validate)

	// Getting handlers
	companyRoutes := handler.NewCompanyDefault(companyService)
	invoiceRoutes := handler.NewInvoiceDefault(invoiceService)

	e := echo.New()
	e.HTTPErrorHandler = apierror.HTTPErrorHandler
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Companies
	e.GET("/companies", companyRoutes.GetCompanies)
	e.GET("/companies/:code", companyRoutes.GetCompany)
	e.POST("/companies", companyRoutes.CreateCompany)
	e.PUT("/companies/:code", companyRoutes.UpdateCompany)
	e.DELETE("/companies/:code", companyRoutes.DeleteCompany)

	// Invoices
	e.GET("/invoices", invoiceRoutes.GetInvoices)
	e.GET("/invoices/:id", invoiceRoutes.GetInvoice)
	e.POST("/invoices", invoiceRoutes.CreateInvoice)
	e.PUT("/invoices/:id", invoiceRoutes.UpdateInvoice)
	e.DELETE("/invoices/:id", invoiceRoutes.DeleteInvoice)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
