package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bobTheBar/domain"
	"bobTheBar/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBottleService struct {
	bottles map[string]domain.Bottle
	created *domain.Bottle
}

func (f *fakeBottleService) GetAllBottles(ctx context.Context) ([]domain.Bottle, error) {
	out := make([]domain.Bottle, 0, len(f.bottles))
	for _, b := range f.bottles {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBottleService) GetBottleByID(ctx context.Context, id string) (*domain.Bottle, error) {
	b, ok := f.bottles[id]
	if !ok {
		return nil, domain.ErrBottleNotFound
	}
	return &b, nil
}

func (f *fakeBottleService) CreateBottle(ctx context.Context, b *domain.Bottle) (*domain.Bottle, error) {
	b.ID = "new-id"
	f.created = b
	return b, nil
}

func getByID(h *BottleHandler, id string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bottles/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	_ = h.GetBottleByID(c)
	return rec
}

func TestBottleHandler_GetByID(t *testing.T) {
	svc := &fakeBottleService{bottles: map[string]domain.Bottle{
		"b1": {ID: "b1", Name: "Talisker 10", SpiritType: domain.SpiritWhisky},
	}}
	h := NewBottleHandler(svc, 0)

	res := getByID(h, "b1")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Talisker 10")

	res = getByID(h, "missing")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.JSONEq(t, `{"message":"bottle not found"}`, res.Body.String())
}

func TestBottleHandler_Create(t *testing.T) {
	logger.SetOutput(io.Discard)

	svc := &fakeBottleService{}
	h := NewBottleHandler(svc, 0)

	res := post(h.CreateBottle, `{"name":"Hendrick's","spirit_type":"GIN","region":"LOWLAND","price":35,"flavors":["FLORAL","CITRUS"],"abv":41.4}`)
	require.Equal(t, http.StatusCreated, res.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, domain.SpiritGin, svc.created.SpiritType)
	assert.Equal(t, 41.4, *svc.created.ABV)

	svc.created = nil
	res = post(h.CreateBottle, `{"name":"X","spirit_type":"GIN","price":35,"flavors":["FLORAL"]}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = post(h.CreateBottle, `{"name":"Strong","spirit_type":"GIN","price":35,"flavors":["FLORAL"],"abv":120}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Nil(t, svc.created)
}
