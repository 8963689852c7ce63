package handler

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecobrands/internal/http/middleware"
	"ecobrands/internal/model"
	"ecobrands/internal/service"
	serviceMocks "ecobrands/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mockSvc := new(serviceMocks.MockBrandService)
	app := fiber.New()
	app.Get("/health", HealthCheck(mockSvc, db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)
		mockSvc.On("CheckConnection", mock.Anything).Return(1, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("database down", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("airtable down", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)
		mockSvc.On("CheckConnection", mock.Anything).Return(0, errors.New("401")).Once()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestHealthCheck_WithoutDatabase(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	mockSvc.On("CheckConnection", mock.Anything).Return(1, nil).Once()

	app := fiber.New()
	app.Get("/health", HealthCheck(mockSvc, nil))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListBrands(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	app := fiber.New()
	app.Get("/api/brands", ListBrands(mockSvc))

	t.Run("defaults", func(t *testing.T) {
		expected := &service.BrandListResult{
			Items:   []model.Brand{{ID: "rec1", Name: "Green Threads", Slug: "green-threads"}},
			Total:   1,
			Limit:   service.DefaultPageSize,
			HasMore: false,
		}
		mockSvc.On("List", mock.Anything, service.BrandQuery{Limit: service.DefaultPageSize}).Return(expected, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/brands", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.BrandListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("filters", func(t *testing.T) {
		want := service.BrandQuery{
			Categories:  []model.Category{model.CategoryClothing, model.CategoryFoodBeverage, model.CategoryHome},
			EcoChampion: true,
			Q:           "tea",
			Limit:       8,
			Offset:      16,
		}
		mockSvc.On("List", mock.Anything, want).Return(&service.BrandListResult{}, nil).Once()

		url := "/api/brands?category=Clothing,Food%20%26%20Beverage&category=Home&category=eco-champion&q=tea&limit=8&offset=16"
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("all quick filter", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.BrandQuery{Limit: service.DefaultPageSize}).Return(&service.BrandListResult{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/brands?category=", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	tests := []struct {
		name string
		url  string
		code string
	}{
		{"invalid limit", "/api/brands?limit=abc", "INVALID_LIMIT"},
		{"negative limit", "/api/brands?limit=-1", "INVALID_LIMIT"},
		{"invalid offset", "/api/brands?offset=x", "INVALID_OFFSET"},
		{"unknown category", "/api/brands?category=Spaceships", "INVALID_CATEGORY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, resp).Error.Code)
		})
	}

	t.Run("airtable unavailable", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.Anything).Return(nil, service.ErrBrandsUnavailable).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/brands", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "BRANDS_UNAVAILABLE", body.Error.Code)
		assert.Equal(t, "Error Loading Brands", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestSearchBrands(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	app := fiber.New()
	app.Get("/api/brands/search", SearchBrands(mockSvc))

	mockSvc.On("Search", mock.Anything, "green").Return([]model.BrandSummary{
		{ID: "rec1", Name: "Green Threads", Slug: "green-threads"},
	}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/brands/search?q=green", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Data []model.BrandSummary `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "green-threads", body.Data[0].Slug)
	mockSvc.AssertExpectations(t)
}

func TestGetBrand(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	app := fiber.New()
	app.Get("/api/brands/:identifier", GetBrand(mockSvc))

	t.Run("success", func(t *testing.T) {
		detail := &service.BrandDetail{
			Brand:   model.Brand{ID: "rec1", Slug: "green-threads", Name: "Green Threads"},
			Related: []model.Brand{{ID: "rec2", Slug: "blue-loom"}},
		}
		mockSvc.On("Get", mock.Anything, "green-threads").Return(detail, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/brands/green-threads", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "rec1", body["id"])
		assert.Len(t, body["related"], 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "nope").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/brands/nope", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "brand not found", decodeError(t, resp).Error.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "boom").Return(nil, errors.New("boom")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/brands/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	mockSvc.On("Categories").Return([]service.QuickFilter{{ID: "", Label: "All"}, {ID: "eco-champion", Label: "Eco Champion"}})
	mockSvc.On("Features").Return([]model.FeatureDefinition{{Feature: model.FeatureOrganicMaterials, Icon: "Leaf"}})
	mockSvc.On("Marketplaces").Return([]service.MarketplaceInfo{{Name: model.MarketplaceAmazon}})

	app := fiber.New()
	app.Get("/api/categories", ListCategories(mockSvc))
	app.Get("/api/features", ListFeatures(mockSvc))
	app.Get("/api/marketplaces", ListMarketplaces(mockSvc))

	tests := []struct {
		path string
		n    int
	}{
		{"/api/categories", 2},
		{"/api/features", 1},
		{"/api/marketplaces", 1},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			var body struct {
				Data []json.RawMessage `json:"data"`
			}
			json.NewDecoder(resp.Body).Decode(&body)
			assert.Len(t, body.Data, tt.n)
		})
	}
}

func TestAirtableTest(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	app := fiber.New()
	app.Get("/api/airtable/test", AirtableTest(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("CheckConnection", mock.Anything).Return(1, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/airtable/test", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(1), body["recordCount"])
	})

	t.Run("failure", func(t *testing.T) {
		mockSvc.On("CheckConnection", mock.Anything).Return(0, errors.New("401")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/airtable/test", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Connection failed", body["message"])
	})

	mockSvc.AssertExpectations(t)
}

func TestSubmitSuggestion(t *testing.T) {
	mockSvc := new(serviceMocks.MockSuggestionService)
	app := fiber.New()
	app.Post("/api/suggestions", SubmitSuggestion(mockSvc))

	input := service.SuggestionInput{
		BrandName:      "Bamboo Co",
		Website:        "https://bamboo.example",
		SubmitterName:  "Sam",
		SubmitterEmail: "sam@example.com",
	}
	post := func(body string, contentType string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/suggestions", strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("json body", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, input).Return(&model.Suggestion{ID: "s1", BrandName: "Bamboo Co", Status: model.SuggestionSent}, nil).Once()

		payload, _ := json.Marshal(input)
		resp := post(string(payload), fiber.MIMEApplicationJSON)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var got model.Suggestion
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "s1", got.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("form body", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, input).Return(&model.Suggestion{ID: "s2"}, nil).Once()

		form := "brand_name=Bamboo+Co&website=https%3A%2F%2Fbamboo.example&submitter_name=Sam&submitter_email=sam%40example.com"
		resp := post(form, fiber.MIMEApplicationForm)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unparseable body", func(t *testing.T) {
		resp := post("{", fiber.MIMEApplicationJSON)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, service.SuggestionInput{}).
			Return(nil, &service.ValidationError{Fields: []string{"brand_name", "submitter_email"}}).Once()

		resp := post(`{}`, fiber.MIMEApplicationJSON)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INVALID_SUGGESTION", body.Error.Code)
		assert.Equal(t, []string{"brand_name", "submitter_email"}, body.Error.Fields)
		mockSvc.AssertExpectations(t)
	})

	t.Run("email failure", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, input).Return(nil, service.ErrEmailFailed).Once()

		payload, _ := json.Marshal(input)
		resp := post(string(payload), fiber.MIMEApplicationJSON)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "EMAIL_FAILED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateBrand(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	app := fiber.New()
	app.Post("/api/admin/brands", CreateBrand(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in model.BrandInput) bool {
			return in.Name == "Bamboo Co" && len(in.Categories) == 1
		})).Return("recNEW", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/brands", strings.NewReader(`{"name":"Bamboo Co","categories":["Home"]}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "recNEW", body["id"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("name required", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return("", service.ErrNameRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/brands", strings.NewReader(`{"name":" "}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "NAME_REQUIRED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateAndDeleteBrand(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	app := fiber.New()
	app.Patch("/api/admin/brands/:id", UpdateBrand(mockSvc))
	app.Delete("/api/admin/brands/:id", DeleteBrand(mockSvc))

	t.Run("update", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, "rec1", mock.MatchedBy(func(p model.BrandPatch) bool {
			return p.Name != nil && *p.Name == "Renamed" && p.Logo == nil
		})).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/brands/rec1", strings.NewReader(`{"name":"Renamed"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "rec1").Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/admin/brands/rec1", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("delete unavailable", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "rec2").Return(service.ErrBrandsUnavailable).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/admin/brands/rec2", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func multipartImage(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	part.Write([]byte("fake image bytes"))
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadBrandImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockBrandService)
	app := fiber.New()
	app.Post("/api/admin/brands/:id/images", UploadBrandImage(mockSvc))

	t.Run("success", func(t *testing.T) {
		body, ct := multipartImage(t, "logo.png")
		expected := &service.UploadResult{URL: "https://cdn.example/brand-assets/logo/x.png", Path: "brand-assets/logo/x.png"}
		mockSvc.On("UploadImage", mock.Anything, "rec1", model.ImageLogo, mock.Anything, "logo.png", mock.Anything, mock.Anything).
			Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/brands/rec1/images?kind=logo", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var got service.UploadResult
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, expected.URL, got.URL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid kind", func(t *testing.T) {
		body, ct := multipartImage(t, "logo.png")
		req := httptest.NewRequest(http.MethodPost, "/api/admin/brands/rec1/images?kind=banner", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_IMAGE_KIND", decodeError(t, resp).Error.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/brands/rec1/images?kind=cover", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("storage disabled", func(t *testing.T) {
		body, ct := multipartImage(t, "cover.jpg")
		mockSvc.On("UploadImage", mock.Anything, "rec1", model.ImageCover, mock.Anything, "cover.jpg", mock.Anything, mock.Anything).
			Return(nil, service.ErrStorageDisabled).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/brands/rec1/images?kind=cover", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "STORAGE_DISABLED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestListSuggestions(t *testing.T) {
	mockSvc := new(serviceMocks.MockSuggestionService)
	app := fiber.New()
	app.Get("/api/admin/suggestions", ListSuggestions(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(&service.SuggestionListResult{
			Items: []model.Suggestion{{ID: "s1"}},
			Total: 1,
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/suggestions", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got service.SuggestionListResult
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, 1, got.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/suggestions?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(nil, service.ErrSuggestionsDisabled).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/suggestions", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SUGGESTIONS_DISABLED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestRobots(t *testing.T) {
	app := fiber.New()
	app.Get("/robots.txt", Robots("https://ecobrands.example"))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "User-agent: *\nAllow: /\n\nSitemap: https://ecobrands.example/sitemap.xml", string(body))
}

func TestSitemap(t *testing.T) {
	parse := func(t *testing.T, resp *http.Response) []string {
		t.Helper()
		var set struct {
			URLs []struct {
				Loc      string `xml:"loc"`
				Priority string `xml:"priority"`
			} `xml:"url"`
		}
		require.NoError(t, xml.NewDecoder(resp.Body).Decode(&set))
		locs := make([]string, 0, len(set.URLs))
		for _, u := range set.URLs {
			locs = append(locs, u.Loc)
		}
		return locs
	}

	t.Run("with brands", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockBrandService)
		mockSvc.On("All", mock.Anything).Return([]model.Brand{
			{ID: "rec1", Slug: "green-threads"},
			{ID: "rec2", Slug: ""},
		}, nil).Once()

		app := fiber.New()
		app.Get("/sitemap.xml", Sitemap(mockSvc, "https://ecobrands.example", nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
		locs := parse(t, resp)
		assert.Len(t, locs, len(StaticPages)+1)
		assert.Equal(t, "https://ecobrands.example/", locs[0])
		assert.Contains(t, locs, "https://ecobrands.example/green-threads")
		mockSvc.AssertExpectations(t)
	})

	t.Run("brands unavailable", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockBrandService)
		mockSvc.On("All", mock.Anything).Return(nil, service.ErrBrandsUnavailable).Once()

		app := fiber.New()
		app.Get("/sitemap.xml", Sitemap(mockSvc, "https://ecobrands.example", nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, parse(t, resp), len(StaticPages))
	})
}

func TestRegisterRoutes_Admin(t *testing.T) {
	newApp := func(token string) (*fiber.App, *serviceMocks.MockBrandService) {
		brands := new(serviceMocks.MockBrandService)
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil)})
		RegisterRoutes(app, Deps{
			Brands:      brands,
			Suggestions: new(serviceMocks.MockSuggestionService),
			AdminToken:  token,
		})
		return app, brands
	}

	t.Run("disabled without token", func(t *testing.T) {
		app, _ := newApp("")
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/admin/brands/rec1", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("requires bearer token", func(t *testing.T) {
		app, _ := newApp("s3cret")
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/admin/brands/rec1", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
	})

	t.Run("authorized", func(t *testing.T) {
		app, brands := newApp("s3cret")
		brands.On("Delete", mock.Anything, "rec1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/brands/rec1", nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		brands.AssertExpectations(t)
	})
}

func TestRegisterRoutes_PageGate(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil)})
	RegisterRoutes(app, Deps{
		Brands:      new(serviceMocks.MockBrandService),
		Suggestions: new(serviceMocks.MockSuggestionService),
	})

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "http://ecobrands.example/certification", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.New(core))})
	app.Use(middleware.RequestID())
	app.Get("/limited", func(c *fiber.Ctx) error { return fiber.ErrTooManyRequests })
	app.Get("/down", func(c *fiber.Ctx) error { return fiber.ErrServiceUnavailable })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.ErrTeapot })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/limited", http.StatusTooManyRequests, "RATE_LIMITED"},
		{"/down", http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"/teapot", http.StatusTeapot, "REQUEST_FAILED"},
		{"/boom", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"/missing", http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("X-Request-ID", "req-"+strings.TrimPrefix(tt.path, "/"))
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, "req-"+strings.TrimPrefix(tt.path, "/"), body.RequestID)
		})
	}

	entries := logs.FilterMessage("unhandled error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-boom", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "/boom", entries[0].ContextMap()["path"])
}
