package forms

import (
	"context"
	"sync"

	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/ui/confirm"
	"github.com/nutridash/backend/internal/ui/notify"
	"github.com/nutridash/backend/internal/ui/query"
	"github.com/nutridash/backend/internal/ui/stores"
	"github.com/nutridash/backend/internal/validation"
)

type ServingUnitForm struct {
	mu    sync.Mutex
	store *stores.ServingUnitStore
	byID  *query.Query[*validation.ServingUnitPayload]
	save  *query.Mutation[validation.ServingUnitPayload, struct{}]
	del   *query.Mutation[deleteTarget, struct{}]
	data  validation.ServingUnitPayload
}

func NewServingUnitForm(
	st *stores.ServingUnitStore,
	client *query.Client,
	notifier *notify.Notifier,
	svc *service.ServingUnitService,
) *ServingUnitForm {
	f := &ServingUnitForm{store: st, data: defaultServingUnitData()}

	f.byID = query.NewQuery(client, "servingUnits", func(ctx context.Context, params any) (*validation.ServingUnitPayload, error) {
		return svc.Get(ctx, params.(uint))
	})
	f.byID.Params = func() any {
		if sel := st.Get().SelectedID; sel != nil {
			return *sel
		}
		return uint(0)
	}
	f.byID.Enabled = func() bool { return st.Get().SelectedID != nil }

	f.save = query.NewMutation(client, notifier, func(ctx context.Context, in validation.ServingUnitPayload) (struct{}, error) {
		return struct{}{}, svc.Save(ctx, in)
	}, "servingUnits")
	f.save.SuccessText = "Serving unit saved"
	f.save.OnSuccess = func(struct{}) {
		st.CloseDialog()
		f.resetData()
	}

	f.del = query.NewMutation(client, notifier, func(ctx context.Context, in deleteTarget) (struct{}, error) {
		return struct{}{}, svc.Delete(ctx, in.ID)
	}, "servingUnits")
	f.del.SuccessText = "Serving unit deleted"

	return f
}

func defaultServingUnitData() validation.ServingUnitPayload {
	return validation.ServingUnitPayload{Action: validation.ActionCreate}
}

func (f *ServingUnitForm) resetData() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = defaultServingUnitData()
}

func (f *ServingUnitForm) Create() {
	f.resetData()
	f.store.OpenDialog()
}

func (f *ServingUnitForm) Edit(ctx context.Context, id uint) error {
	f.store.OpenDialogFor(id)

	payload, ok, err := f.byID.Fetch(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if ok && payload != nil {
		f.data = *payload
	} else {
		f.data = defaultServingUnitData()
	}
	return nil
}

func (f *ServingUnitForm) Data() validation.ServingUnitPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *ServingUnitForm) SetData(recipe func(*validation.ServingUnitPayload)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recipe(&f.data)
}

func (f *ServingUnitForm) Submit(ctx context.Context) error {
	_, err := f.save.Execute(ctx, f.Data())
	return err
}

func (f *ServingUnitForm) Pending() bool {
	return f.save.Pending()
}

func (f *ServingUnitForm) Delete(ctx context.Context, id uint, confirmer *confirm.Confirmer) {
	confirmer.Request(confirm.Config{
		Title:        "Delete serving unit?",
		ConfirmLabel: "Delete",
		OnConfirm: func() {
			_, _ = f.del.Execute(ctx, deleteTarget{ID: id})
		},
	})
}
