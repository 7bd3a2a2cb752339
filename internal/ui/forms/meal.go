package forms

import (
	"context"
	"sync"
	"time"

	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/ui/confirm"
	"github.com/nutridash/backend/internal/ui/fieldgroup"
	"github.com/nutridash/backend/internal/ui/notify"
	"github.com/nutridash/backend/internal/ui/query"
	"github.com/nutridash/backend/internal/ui/stores"
	"github.com/nutridash/backend/internal/validation"
)

// MealForm drives the meal dialog for one signed-in user. The food rows
// live in a field group; the owner reference is pre-filled from the
// session identity and never entered by hand.
type MealForm struct {
	mu        sync.Mutex
	store     *stores.MealStore
	identity  types.TokenClaims
	list      *query.Query[[]models.Meal]
	byID      *query.Query[*validation.MealPayload]
	save      *query.Mutation[validation.MealPayload, struct{}]
	del       *query.Mutation[deleteTarget, struct{}]
	data      validation.MealPayload
	MealFoods *fieldgroup.Group[validation.MealFoodPayload]
}

func NewMealForm(
	st *stores.MealStore,
	client *query.Client,
	notifier *notify.Notifier,
	svc *service.MealService,
	identity types.TokenClaims,
) *MealForm {
	f := &MealForm{
		store:     st,
		identity:  identity,
		MealFoods: fieldgroup.New[validation.MealFoodPayload]("mealFoods"),
	}
	f.data = f.defaultData()

	f.list = query.NewQuery(client, "meals", func(ctx context.Context, params any) ([]models.Meal, error) {
		return svc.List(ctx, identity.UserID, params.(types.MealFilters))
	})
	f.list.Params = func() any { return st.Get().Filters }

	f.byID = query.NewQuery(client, "meals", func(ctx context.Context, params any) (*validation.MealPayload, error) {
		return svc.Get(ctx, params.(uint), identity.UserID)
	})
	f.byID.Params = func() any {
		if sel := st.Get().SelectedID; sel != nil {
			return *sel
		}
		return uint(0)
	}
	f.byID.Enabled = func() bool { return st.Get().SelectedID != nil }

	f.save = query.NewMutation(client, notifier, func(ctx context.Context, in validation.MealPayload) (struct{}, error) {
		return struct{}{}, svc.Save(ctx, identity.UserID, in)
	}, "meals")
	f.save.SuccessText = "Meal saved"
	f.save.OnSuccess = func(struct{}) {
		st.CloseDialog()
		f.resetData()
	}

	f.del = query.NewMutation(client, notifier, func(ctx context.Context, in deleteTarget) (struct{}, error) {
		return struct{}{}, svc.Delete(ctx, in.ID, identity.UserID)
	}, "meals")
	f.del.SuccessText = "Meal deleted"

	return f
}

func (f *MealForm) defaultData() validation.MealPayload {
	return validation.MealPayload{
		Action:   validation.ActionCreate,
		UserID:   validation.IDToString(f.identity.UserID),
		DateTime: time.Now(),
	}
}

func (f *MealForm) resetData() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = f.defaultData()
	f.MealFoods.Clear()
}

// List fetches the meals for the selected day, through the cache.
func (f *MealForm) List(ctx context.Context) ([]models.Meal, error) {
	meals, _, err := f.list.Fetch(ctx)
	return meals, err
}

func (f *MealForm) Create() {
	f.resetData()
	f.store.OpenDialog()
}

func (f *MealForm) Edit(ctx context.Context, id uint) error {
	f.store.OpenDialogFor(id)

	payload, ok, err := f.byID.Fetch(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if ok && payload != nil {
		f.data = *payload
		f.MealFoods.Reset(payload.MealFoods)
	} else {
		f.data = f.defaultData()
		f.MealFoods.Clear()
	}
	return nil
}

func (f *MealForm) Data() validation.MealPayload {
	f.mu.Lock()
	data := f.data
	f.mu.Unlock()
	data.MealFoods = f.MealFoods.Values()
	return data
}

func (f *MealForm) SetData(recipe func(*validation.MealPayload)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recipe(&f.data)
}

func (f *MealForm) Submit(ctx context.Context) error {
	_, err := f.save.Execute(ctx, f.Data())
	return err
}

func (f *MealForm) Pending() bool {
	return f.save.Pending()
}

func (f *MealForm) Delete(ctx context.Context, id uint, confirmer *confirm.Confirmer) {
	confirmer.Request(confirm.Config{
		Title:        "Delete meal?",
		ConfirmLabel: "Delete",
		OnConfirm: func() {
			_, _ = f.del.Execute(ctx, deleteTarget{ID: id})
		},
	})
}
