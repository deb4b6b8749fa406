package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/composer"
	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTime = time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)

type fakePlans struct {
	err      error
	doc      composer.Document
	clientID *uuid.UUID
	inline   bool
	to       string
	calls    int
}

func (f *fakePlans) ComposeMealPlan(coachID uuid.UUID, req services.MealPlanRequest) (composer.Document, *models.Client, error) {
	f.calls++
	return f.doc, &models.Client{}, f.err
}

func (f *fakePlans) ComposeTrainingPlan(coachID uuid.UUID, req services.TrainingPlanRequest) (composer.Document, *models.Client, error) {
	f.calls++
	return f.doc, &models.Client{}, f.err
}

func (f *fakePlans) GenerateMealPlan(ctx context.Context, coachID uuid.UUID, req services.MealPlanRequest) (*models.PlanDocument, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.PlanDocument{CoachID: coachID, ClientID: req.ClientID, Kind: models.PlanKindMeal, FileName: "a.pdf"}, nil
}

func (f *fakePlans) GenerateTrainingPlan(ctx context.Context, coachID uuid.UUID, req services.TrainingPlanRequest) (*models.PlanDocument, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.PlanDocument{CoachID: coachID, ClientID: req.ClientID, Kind: models.PlanKindTraining}, nil
}

func (f *fakePlans) ListDocuments(coachID uuid.UUID, clientID *uuid.UUID) ([]models.PlanDocument, error) {
	f.calls++
	f.clientID = clientID
	return nil, f.err
}

func (f *fakePlans) DocumentURL(ctx context.Context, coachID, id uuid.UUID, inline bool) (string, error) {
	f.calls++
	f.inline = inline
	return "https://signed.example.com/" + id.String(), f.err
}

func (f *fakePlans) EmailDocument(ctx context.Context, coachID, id uuid.UUID, to string) error {
	f.calls++
	f.to = to
	return f.err
}

func (f *fakePlans) DeleteDocument(ctx context.Context, coachID, id uuid.UUID) error {
	f.calls++
	return f.err
}

func withCoach(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("coachID", id)
		c.Next()
	}
}

func planRouter(p Plans) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withCoach(uuid.New()))
	pc := NewPlanController(p)
	r.POST("/plans/meal/preview", pc.PreviewMeal)
	r.POST("/plans/meal", pc.GenerateMeal)
	r.POST("/plans/training", pc.GenerateTraining)
	r.GET("/plans", pc.List)
	r.GET("/plans/:id/download", pc.Download)
	r.GET("/plans/:id/view", pc.View)
	r.POST("/plans/:id/email", pc.Email)
	r.DELETE("/plans/:id", pc.Delete)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %s: %v", w.Body, err)
	}
	return body.Error
}

func TestGenerateStatuses(t *testing.T) {
	client := uuid.NewString()
	body := fmt.Sprintf(`{"client_id":%q,"meal_ids":[%q]}`, client, uuid.NewString())

	w := do(planRouter(&fakePlans{}), http.MethodPost, "/plans/meal", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	var rec models.PlanDocument
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil || rec.ClientID.String() != client {
		t.Errorf("record = %+v, %v", rec, err)
	}

	w = do(planRouter(&fakePlans{err: services.ErrNothingToRender}), http.MethodPost, "/plans/training", body)
	if w.Code != http.StatusUnprocessableEntity || errorOf(t, w) != "nothing to render" {
		t.Errorf("empty plan status = %d, body = %s", w.Code, w.Body)
	}

	w = do(planRouter(&fakePlans{err: services.ErrNotFound}), http.MethodPost, "/plans/meal", body)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown client status = %d", w.Code)
	}

	fake := &fakePlans{}
	w = do(planRouter(fake), http.MethodPost, "/plans/meal", `{"meal_ids":[]}`)
	if w.Code != http.StatusBadRequest || fake.calls != 0 {
		t.Errorf("missing client status = %d, calls = %d", w.Code, fake.calls)
	}
}

func TestPreviewReturnsPages(t *testing.T) {
	doc := composer.ComposeMealPlan(composer.RawBranding{}, nil, []composer.MealRecord{
		{ID: "1", Name: "Oats", Category: composer.Breakfast, Calories: 300},
	}, "Alex", testTime, composer.DefaultOptions())

	w := do(planRouter(&fakePlans{doc: doc}), http.MethodPost, "/plans/meal/preview", fmt.Sprintf(`{"client_id":%q}`, uuid.NewString()))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	var got struct {
		PageCount int `json:"page_count"`
		Pages     []struct {
			Kind  string `json:"kind"`
			Title string `json:"title"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.PageCount != 1 || got.Pages[0].Kind != "content" || got.Pages[0].Title != composer.MealsTitle {
		t.Errorf("preview = %+v", got)
	}

	w = do(planRouter(&fakePlans{}), http.MethodPost, "/plans/meal/preview", fmt.Sprintf(`{"client_id":%q}`, uuid.NewString()))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"pages":[]`)) {
		t.Errorf("empty preview = %d %s", w.Code, w.Body)
	}
}

func TestListFiltersByClient(t *testing.T) {
	fake := &fakePlans{}
	client := uuid.New()
	w := do(planRouter(fake), http.MethodGet, "/plans?client_id="+client.String(), "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	if fake.clientID == nil || *fake.clientID != client {
		t.Errorf("client filter = %v", fake.clientID)
	}

	if w := do(planRouter(fake), http.MethodGet, "/plans?client_id=nope", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad filter status = %d", w.Code)
	}
}

func TestDocumentLinks(t *testing.T) {
	fake := &fakePlans{}
	id := uuid.NewString()

	w := do(planRouter(fake), http.MethodGet, "/plans/"+id+"/view", "")
	if w.Code != http.StatusOK || !fake.inline {
		t.Fatalf("view status = %d, inline = %v", w.Code, fake.inline)
	}
	w = do(planRouter(fake), http.MethodGet, "/plans/"+id+"/download", "")
	if w.Code != http.StatusOK || fake.inline {
		t.Fatalf("download status = %d, inline = %v", w.Code, fake.inline)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(id)) {
		t.Errorf("body = %s", w.Body)
	}

	if w := do(planRouter(fake), http.MethodGet, "/plans/not-a-uuid/view", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d", w.Code)
	}
}

func TestEmailPlan(t *testing.T) {
	id := uuid.NewString()

	fake := &fakePlans{}
	if w := do(planRouter(fake), http.MethodPost, "/plans/"+id+"/email", ""); w.Code != http.StatusOK || fake.to != "" {
		t.Errorf("default recipient status = %d, to = %q", w.Code, fake.to)
	}
	if w := do(planRouter(fake), http.MethodPost, "/plans/"+id+"/email", `{"to":"sam@example.com"}`); w.Code != http.StatusOK || fake.to != "sam@example.com" {
		t.Errorf("explicit recipient status = %d, to = %q", w.Code, fake.to)
	}
	if w := do(planRouter(fake), http.MethodPost, "/plans/"+id+"/email", `{"to":"not an email"}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid recipient status = %d", w.Code)
	}

	w := do(planRouter(&fakePlans{err: services.ErrNoRecipient}), http.MethodPost, "/plans/"+id+"/email", "")
	if w.Code != http.StatusBadRequest || errorOf(t, w) != services.ErrNoRecipient.Error() {
		t.Errorf("no recipient status = %d, body = %s", w.Code, w.Body)
	}
}

func TestDeletePlan(t *testing.T) {
	if w := do(planRouter(&fakePlans{}), http.MethodDelete, "/plans/"+uuid.NewString(), ""); w.Code != http.StatusNoContent {
		t.Errorf("status = %d", w.Code)
	}
	if w := do(planRouter(&fakePlans{err: services.ErrNotFound}), http.MethodDelete, "/plans/"+uuid.NewString(), ""); w.Code != http.StatusNotFound {
		t.Errorf("missing status = %d", w.Code)
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := config.Migrate(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestMealCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := services.NewMealService(testDB(t))
	coach := uuid.New()
	router := func(id uuid.UUID) *gin.Engine {
		r := gin.New()
		r.Use(withCoach(id))
		NewCatalogController[models.Meal, services.MealInput](svc).Mount(r.Group("/meals"))
		return r
	}

	w := do(router(coach), http.MethodPost, "/meals", `{"name":"Oats","category":"breakfast","calories":300,"vegan":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body)
	}
	var meal models.Meal
	if err := json.Unmarshal(w.Body.Bytes(), &meal); err != nil || meal.ID == uuid.Nil || !meal.Vegan {
		t.Fatalf("meal = %+v, %v", meal, err)
	}

	if w := do(router(coach), http.MethodPost, "/meals", `{"name":"Oats","category":"brunch"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad category status = %d", w.Code)
	}
	if w := do(router(uuid.New()), http.MethodGet, "/meals/"+meal.ID.String(), ""); w.Code != http.StatusNotFound {
		t.Errorf("other coach status = %d", w.Code)
	}
	if w := do(router(uuid.New()), http.MethodGet, "/meals", ""); w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("other coach list = %d %s", w.Code, w.Body)
	}

	w = do(router(coach), http.MethodPut, "/meals/"+meal.ID.String(), `{"name":"Overnight oats","category":"breakfast"}`)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("Overnight oats")) {
		t.Errorf("update = %d %s", w.Code, w.Body)
	}
	if w := do(router(coach), http.MethodDelete, "/meals/"+meal.ID.String(), ""); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", w.Code)
	}
	if w := do(router(coach), http.MethodDelete, "/meals/"+meal.ID.String(), ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}
}

func TestBrandingResolvesDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bc := NewBrandingController(services.NewBrandingService(testDB(t)), nil)
	r := gin.New()
	r.Use(withCoach(uuid.New()))
	r.GET("/branding", bc.Get)
	r.PUT("/branding", bc.Update)
	r.POST("/branding/logo", bc.UploadLogo)

	w := do(r, http.MethodGet, "/branding", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(composer.DefaultAccentColor)) {
		t.Fatalf("get = %d %s", w.Code, w.Body)
	}

	if w := do(r, http.MethodPut, "/branding", `{"accent_color":"red"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad color status = %d", w.Code)
	}
	if w := do(r, http.MethodPut, "/branding", `{"logo_position":"bottom"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad position status = %d", w.Code)
	}

	w = do(r, http.MethodPut, "/branding", `{"accent_color":"#112233","logo_position":"top-right"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update = %d %s", w.Code, w.Body)
	}
	var got struct {
		Resolved composer.Branding `json:"resolved"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Resolved.AccentColor != "#112233" || got.Resolved.LogoPosition != composer.LogoTopRight {
		t.Errorf("resolved = %+v", got.Resolved)
	}

	if w := do(r, http.MethodPost, "/branding/logo", `{"image_base64":"data:image/png;base64,AAAA"}`); w.Code != http.StatusServiceUnavailable {
		t.Errorf("logo without storage status = %d", w.Code)
	}
}
