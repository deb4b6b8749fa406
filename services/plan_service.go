package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"backend/composer"
	"backend/models"
	"backend/renderer"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const presignTTL = 15 * time.Minute

type PlanStorage interface {
	PutPDF(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key, fileName, disposition string, ttl time.Duration) (string, error)
}

type PlanMailer interface {
	SendWithAttachment(ctx context.Context, to, subject, body string, att utils.Attachment) error
}

type PlanRenderer interface {
	Render(ctx context.Context, doc composer.Document) (*renderer.Rendered, error)
}

type MealPlanRequest struct {
	ClientID      uuid.UUID   `json:"client_id" binding:"required"`
	MealIDs       []uuid.UUID `json:"meal_ids"`
	SupplementIDs []uuid.UUID `json:"supplement_ids"`
}

type TrainingPlanRequest struct {
	ClientID    uuid.UUID   `json:"client_id" binding:"required"`
	ExerciseIDs []uuid.UUID `json:"exercise_ids"`
}

// PlanService turns a coach's selection into a stored, deliverable PDF.
type PlanService struct {
	db          *gorm.DB
	clients     *ClientService
	meals       *MealService
	supplements *SupplementService
	exercises   *ExerciseService
	branding    *BrandingService

	storage  PlanStorage
	mailer   PlanMailer
	renderer PlanRenderer
	notifier *PlanNotifier
	opts     composer.Options
	now      func() time.Time
}

func NewPlanService(db *gorm.DB, storage PlanStorage, mailer PlanMailer, r PlanRenderer, notifier *PlanNotifier, opts composer.Options) *PlanService {
	return &PlanService{
		db:          db,
		clients:     NewClientService(db),
		meals:       NewMealService(db),
		supplements: NewSupplementService(db),
		exercises:   NewExerciseService(db),
		branding:    NewBrandingService(db),
		storage:     storage,
		mailer:      mailer,
		renderer:    r,
		notifier:    notifier,
		opts:        opts,
		now:         time.Now,
	}
}

// ComposeMealPlan builds the document model without rendering it.
func (s *PlanService) ComposeMealPlan(coachID uuid.UUID, req MealPlanRequest) (composer.Document, *models.Client, error) {
	client, err := s.clients.Get(coachID, req.ClientID)
	if err != nil {
		return composer.Document{}, nil, err
	}
	raw, err := s.branding.Raw(coachID)
	if err != nil {
		return composer.Document{}, nil, err
	}
	meals, err := s.meals.Select(coachID, req.MealIDs)
	if err != nil {
		return composer.Document{}, nil, err
	}
	supps, err := s.supplements.Select(coachID, req.SupplementIDs)
	if err != nil {
		return composer.Document{}, nil, err
	}

	mealRecs := make([]composer.MealRecord, 0, len(meals))
	for _, m := range meals {
		mealRecs = append(mealRecs, mealRecord(m))
	}
	suppRecs := make([]composer.SupplementRecord, 0, len(supps))
	for _, m := range supps {
		suppRecs = append(suppRecs, supplementRecord(m))
	}
	doc := composer.ComposeMealPlan(raw, suppRecs, mealRecs, client.Name, s.now(), s.opts)
	return doc, client, nil
}

func (s *PlanService) ComposeTrainingPlan(coachID uuid.UUID, req TrainingPlanRequest) (composer.Document, *models.Client, error) {
	client, err := s.clients.Get(coachID, req.ClientID)
	if err != nil {
		return composer.Document{}, nil, err
	}
	raw, err := s.branding.Raw(coachID)
	if err != nil {
		return composer.Document{}, nil, err
	}
	exercises, err := s.exercises.Select(coachID, req.ExerciseIDs)
	if err != nil {
		return composer.Document{}, nil, err
	}

	recs := make([]composer.ExerciseRecord, 0, len(exercises))
	for _, e := range exercises {
		recs = append(recs, exerciseRecord(e))
	}
	doc := composer.ComposeTrainingPlan(raw, recs, client.Name, s.now(), s.opts)
	return doc, client, nil
}

func (s *PlanService) GenerateMealPlan(ctx context.Context, coachID uuid.UUID, req MealPlanRequest) (*models.PlanDocument, error) {
	doc, client, err := s.ComposeMealPlan(coachID, req)
	if err != nil {
		return nil, err
	}
	return s.publish(ctx, coachID, client, models.PlanKindMeal, doc)
}

func (s *PlanService) GenerateTrainingPlan(ctx context.Context, coachID uuid.UUID, req TrainingPlanRequest) (*models.PlanDocument, error) {
	doc, client, err := s.ComposeTrainingPlan(coachID, req)
	if err != nil {
		return nil, err
	}
	return s.publish(ctx, coachID, client, models.PlanKindTraining, doc)
}

// publish renders the document, uploads it and records it.
func (s *PlanService) publish(ctx context.Context, coachID uuid.UUID, client *models.Client, kind string, doc composer.Document) (*models.PlanDocument, error) {
	out, err := s.renderer.Render(ctx, doc)
	if err != nil {
		if errors.Is(err, renderer.ErrEmptyDocument) {
			return nil, ErrNothingToRender
		}
		return nil, err
	}

	id := uuid.New()
	rec := &models.PlanDocument{
		Base:      models.Base{ID: id},
		CoachID:   coachID,
		ClientID:  client.ID,
		Kind:      kind,
		FileName:  planFileName(client.Name, kind, s.now()),
		ObjectKey: fmt.Sprintf("plans/%s/%s.pdf", coachID, id),
		Pages:     out.Pages,
		SizeBytes: int64(len(out.PDF)),
	}
	if err := s.storage.PutPDF(ctx, rec.ObjectKey, out.PDF); err != nil {
		return nil, err
	}
	if err := s.db.Create(rec).Error; err != nil {
		if derr := s.storage.Delete(ctx, rec.ObjectKey); derr != nil {
			log.Printf("plan: orphaned object %s: %v", rec.ObjectKey, derr)
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.PlanGenerated(coachID, rec)
	}
	return rec, nil
}

func (s *PlanService) ListDocuments(coachID uuid.UUID, clientID *uuid.UUID) ([]models.PlanDocument, error) {
	var docs []models.PlanDocument
	q := s.db.Where("coach_id = ?", coachID).Order("created_at DESC")
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}
	err := q.Find(&docs).Error
	return docs, err
}

func (s *PlanService) GetDocument(coachID, id uuid.UUID) (*models.PlanDocument, error) {
	return scopedStore[models.PlanDocument]{db: s.db}.get(coachID, id)
}

// DocumentURL returns a short-lived link. inline selects view over download.
func (s *PlanService) DocumentURL(ctx context.Context, coachID, id uuid.UUID, inline bool) (string, error) {
	rec, err := s.GetDocument(coachID, id)
	if err != nil {
		return "", err
	}
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	return s.storage.PresignGet(ctx, rec.ObjectKey, rec.FileName, disposition, presignTTL)
}

// EmailDocument sends the PDF as an attachment. An empty recipient falls
// back to the client's email.
func (s *PlanService) EmailDocument(ctx context.Context, coachID, id uuid.UUID, to string) error {
	rec, err := s.GetDocument(coachID, id)
	if err != nil {
		return err
	}
	client, err := s.clients.Get(coachID, rec.ClientID)
	if err != nil {
		return err
	}
	if to == "" {
		to = client.Email
	}
	if to == "" {
		return ErrNoRecipient
	}

	pdf, err := s.storage.Get(ctx, rec.ObjectKey)
	if err != nil {
		return err
	}
	raw, err := s.branding.Raw(coachID)
	if err != nil {
		return err
	}
	from := composer.Resolve(raw).CoachDisplayName
	if from == "" {
		from = "your coach"
	}

	subject := fmt.Sprintf("Your %s plan", rec.Kind)
	body := fmt.Sprintf("Hi %s,\n\nAttached is your %s plan from %s.\n", client.Name, rec.Kind, from)
	return s.mailer.SendWithAttachment(ctx, to, subject, body, utils.Attachment{
		FileName:    rec.FileName,
		ContentType: "application/pdf",
		Data:        pdf,
	})
}

func (s *PlanService) DeleteDocument(ctx context.Context, coachID, id uuid.UUID) error {
	rec, err := s.GetDocument(coachID, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, rec.ObjectKey); err != nil {
		return err
	}
	return s.db.Delete(rec).Error
}

func planFileName(clientName, kind string, at time.Time) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(clientName) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "client"
	}
	return fmt.Sprintf("%s-%s-plan-%s.pdf", slug, kind, at.Format("2006-01-02"))
}
