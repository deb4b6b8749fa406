package services

import (
	"context"
	"sync"
	"time"

	"backend/models"

	"github.com/google/uuid"
)

const pushTimeout = 15 * time.Second

type Pusher interface {
	PushToCoach(ctx context.Context, coachID uuid.UUID, title, body string, data map[string]string)
}

// PlanNotifier fans plan events out to open websockets and mobile devices.
// Either target may be nil. Pushes run in the background so a slow SNS call
// never holds up the request that generated the plan.
type PlanNotifier struct {
	rt   *RealtimeHub
	push Pusher
	wg   sync.WaitGroup
}

func NewPlanNotifier(rt *RealtimeHub, push Pusher) *PlanNotifier {
	return &PlanNotifier{rt: rt, push: push}
}

func (n *PlanNotifier) PlanGenerated(coachID uuid.UUID, doc *models.PlanDocument) {
	if n.rt != nil {
		n.rt.Broadcast(coachID, map[string]any{
			"kind":     "plan.generated",
			"document": doc,
		})
	}
	if n.push != nil {
		title, body := "Plan ready", doc.FileName+" is ready to share"
		data := map[string]string{
			"type":       "plan.generated",
			"documentId": doc.ID.String(),
		}
		n.wg.Add(1)
		go func() {
			defer n.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
			defer cancel()
			n.push.PushToCoach(ctx, coachID, title, body, data)
		}()
	}
}

// Wait blocks until background pushes have finished.
func (n *PlanNotifier) Wait() {
	n.wg.Wait()
}
