package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fergood-2703/SIA-FCP/internal/app/controllers"
	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/app/routes"
	"github.com/fergood-2703/SIA-FCP/internal/app/services"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryAreaStore backs the real service so controller tests run the whole
// HTTP -> service -> store path in memory.
type memoryAreaStore struct {
	areas       map[int64]*models.AcademicArea
	nextID      int64
	blockDelete bool
}

func newMemoryAreaStore() *memoryAreaStore {
	return &memoryAreaStore{areas: map[int64]*models.AcademicArea{}, nextID: 1}
}

func (m *memoryAreaStore) Create(_ context.Context, area *models.AcademicArea) error {
	area.ID = m.nextID
	m.nextID++
	copied := *area
	m.areas[area.ID] = &copied
	return nil
}

func (m *memoryAreaStore) GetByID(_ context.Context, id int64) (*models.AcademicArea, error) {
	area, ok := m.areas[id]
	if !ok {
		return nil, apperrors.ErrAreaNotFound
	}
	return area, nil
}

func (m *memoryAreaStore) GetAll(_ context.Context) ([]*models.AcademicArea, error) {
	out := []*models.AcademicArea{}
	for id := int64(1); id < m.nextID; id++ {
		if area, ok := m.areas[id]; ok {
			out = append(out, area)
		}
	}
	return out, nil
}

func (m *memoryAreaStore) Update(_ context.Context, area *models.AcademicArea) error {
	if _, ok := m.areas[area.ID]; !ok {
		return apperrors.ErrAreaNotFound
	}
	copied := *area
	m.areas[area.ID] = &copied
	return nil
}

func (m *memoryAreaStore) Delete(_ context.Context, id int64) error {
	if m.blockDelete {
		return apperrors.NewCustomError(apperrors.ErrAreaHasRelations,
			"cannot delete: 2 careers, 0 courses and 1 teachers reference this area")
	}
	if _, ok := m.areas[id]; !ok {
		return apperrors.ErrAreaNotFound
	}
	delete(m.areas, id)
	return nil
}

func newTestRouter(areaService services.AreaService) *gin.Engine {
	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAreaController(areaService),
		controllers.NewCareerController(nil),
		controllers.NewCourseController(nil),
		controllers.NewTeacherController(nil),
		controllers.NewStudentController(nil),
		controllers.NewDashboardController(nil),
		controllers.NewAssistantController(nil),
	)
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAreaEndpoints(t *testing.T) {
	store := newMemoryAreaStore()
	router := newTestRouter(services.NewAreaService(store))

	t.Run("create", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/api/v1/areas", dto.AreaForm{Name: "Health Sciences"})
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Data models.AcademicArea `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.Data.ID)
		assert.Equal(t, "Health Sciences", resp.Data.Name)
	})

	t.Run("create with blank name", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/api/v1/areas", dto.AreaForm{Name: "  "})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp dto.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "the area name is required", resp.Error.Message)
	})

	t.Run("list with search", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/api/v1/areas", dto.AreaForm{Name: "Engineering"})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doRequest(router, http.MethodGet, "/api/v1/areas?search=health", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Rows []models.AcademicArea `json:"rows"`
				Meta dto.ListMeta          `json:"meta"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Data.Meta.Total)
		assert.Equal(t, 1, resp.Data.Meta.Filtered)
		require.Len(t, resp.Data.Rows, 1)
		assert.Equal(t, "Health Sciences", resp.Data.Rows[0].Name)
	})

	t.Run("get form", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/areas/1/form", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data dto.AreaForm `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Health Sciences", resp.Data.Name)
	})

	t.Run("get new form", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/areas/form/new", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/areas/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/areas/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		rec := doRequest(router, http.MethodPut, "/api/v1/areas/1", dto.AreaForm{Name: "Health and Medicine"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data models.AcademicArea `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Health and Medicine", resp.Data.Name)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doRequest(router, http.MethodDelete, "/api/v1/areas/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(router, http.MethodGet, "/api/v1/areas/2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete blocked by references", func(t *testing.T) {
		store.blockDelete = true
		defer func() { store.blockDelete = false }()

		rec := doRequest(router, http.MethodDelete, "/api/v1/areas/1", nil)
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp dto.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrorCodeReferentialConflict, resp.Error.Code)
		assert.Equal(t, "cannot delete: 2 careers, 0 courses and 1 teachers reference this area", resp.Error.Message)
	})
}
