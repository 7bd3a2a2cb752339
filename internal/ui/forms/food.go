package forms

import (
	"context"
	"sync"

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

// FoodForm drives the food dialog. The serving-unit rows live in a field
// group; each row may open the nested serving-unit dialog to create a new
// reference inline, and while that dialog is open the parent submit is
// suspended.
type FoodForm struct {
	mu           sync.Mutex
	store        *stores.FoodStore
	nestedStore  *stores.ServingUnitStore
	list         *query.Query[types.PaginatedResult[models.Food]]
	byID         *query.Query[*validation.FoodPayload]
	save         *query.Mutation[validation.FoodPayload, struct{}]
	del          *query.Mutation[deleteTarget, struct{}]
	data         validation.FoodPayload
	ServingUnits *fieldgroup.Group[validation.FoodServingUnitPayload]
}

func NewFoodForm(
	st *stores.FoodStore,
	nested *stores.ServingUnitStore,
	client *query.Client,
	notifier *notify.Notifier,
	svc *service.FoodService,
) *FoodForm {
	f := &FoodForm{
		store:        st,
		nestedStore:  nested,
		data:         defaultFoodData(),
		ServingUnits: fieldgroup.New[validation.FoodServingUnitPayload]("foodServingUnits"),
	}

	f.list = query.NewQuery(client, "foods", func(ctx context.Context, params any) (types.PaginatedResult[models.Food], error) {
		return svc.List(ctx, params.(types.FoodFilters))
	})
	f.list.Params = func() any { return st.Get().Filters }

	f.byID = query.NewQuery(client, "foods", func(ctx context.Context, params any) (*validation.FoodPayload, error) {
		return svc.Get(ctx, params.(uint))
	})
	f.byID.Params = func() any {
		if sel := st.Get().SelectedID; sel != nil {
			return *sel
		}
		return uint(0)
	}
	f.byID.Enabled = func() bool { return st.Get().SelectedID != nil }

	f.save = query.NewMutation(client, notifier, func(ctx context.Context, in validation.FoodPayload) (struct{}, error) {
		return struct{}{}, svc.Save(ctx, in)
	}, "foods")
	f.save.SuccessText = "Food saved"
	f.save.OnSuccess = func(struct{}) {
		st.CloseDialog()
		f.resetData()
	}

	f.del = query.NewMutation(client, notifier, func(ctx context.Context, in deleteTarget) (struct{}, error) {
		return struct{}{}, svc.Delete(ctx, in.ID)
	}, "foods")
	f.del.SuccessText = "Food deleted"

	return f
}

func defaultFoodData() validation.FoodPayload {
	return validation.FoodPayload{
		Action:        validation.ActionCreate,
		Calories:      "0",
		Protein:       "0",
		Fat:           "0",
		Carbohydrates: "0",
		Fiber:         "0",
		Sugar:         "0",
	}
}

func (f *FoodForm) resetData() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = defaultFoodData()
	f.ServingUnits.Clear()
}

// List fetches the food page for the committed filters, through the cache.
func (f *FoodForm) List(ctx context.Context) (types.PaginatedResult[models.Food], error) {
	result, _, err := f.list.Fetch(ctx)
	return result, err
}

func (f *FoodForm) Create() {
	f.resetData()
	f.store.OpenDialog()
}

func (f *FoodForm) Edit(ctx context.Context, id uint) error {
	f.store.OpenDialogFor(id)

	payload, ok, err := f.byID.Fetch(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if ok && payload != nil {
		f.data = *payload
		f.ServingUnits.Reset(payload.ServingUnits)
	} else {
		f.data = defaultFoodData()
		f.ServingUnits.Clear()
	}
	return nil
}

func (f *FoodForm) Data() validation.FoodPayload {
	f.mu.Lock()
	data := f.data
	f.mu.Unlock()
	data.ServingUnits = f.ServingUnits.Values()
	return data
}

func (f *FoodForm) SetData(recipe func(*validation.FoodPayload)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recipe(&f.data)
}

// SubmitSuspended reports whether the nested serving-unit dialog is open.
func (f *FoodForm) SubmitSuspended() bool {
	return f.nestedStore != nil && f.nestedStore.Get().DialogOpen
}

// Submit validates and saves the food with its serving-unit rows. While
// the nested dialog is open it refuses to run.
func (f *FoodForm) Submit(ctx context.Context) error {
	if f.SubmitSuspended() {
		return ErrSubmitSuspended
	}
	_, err := f.save.Execute(ctx, f.Data())
	return err
}

func (f *FoodForm) Pending() bool {
	return f.save.Pending()
}

func (f *FoodForm) Delete(ctx context.Context, id uint, confirmer *confirm.Confirmer) {
	confirmer.Request(confirm.Config{
		Title:        "Delete food?",
		Description:  "Its serving units will be removed with it.",
		ConfirmLabel: "Delete",
		OnConfirm: func() {
			_, _ = f.del.Execute(ctx, deleteTarget{ID: id})
		},
	})
}
