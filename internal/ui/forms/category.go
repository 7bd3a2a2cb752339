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

type CategoryForm struct {
	mu    sync.Mutex
	store *stores.CategoryStore
	byID  *query.Query[*validation.CategoryPayload]
	save  *query.Mutation[validation.CategoryPayload, struct{}]
	del   *query.Mutation[deleteTarget, struct{}]
	data  validation.CategoryPayload
}

func NewCategoryForm(
	st *stores.CategoryStore,
	client *query.Client,
	notifier *notify.Notifier,
	svc *service.CategoryService,
) *CategoryForm {
	f := &CategoryForm{store: st, data: defaultCategoryData()}

	f.byID = query.NewQuery(client, "categories", func(ctx context.Context, params any) (*validation.CategoryPayload, error) {
		return svc.Get(ctx, params.(uint))
	})
	f.byID.Params = func() any {
		if sel := st.Get().SelectedID; sel != nil {
			return *sel
		}
		return uint(0)
	}
	f.byID.Enabled = func() bool { return st.Get().SelectedID != nil }

	f.save = query.NewMutation(client, notifier, func(ctx context.Context, in validation.CategoryPayload) (struct{}, error) {
		return struct{}{}, svc.Save(ctx, in)
	}, "categories")
	f.save.SuccessText = "Category saved"
	f.save.OnSuccess = func(struct{}) {
		st.CloseDialog()
		f.resetData()
	}

	f.del = query.NewMutation(client, notifier, func(ctx context.Context, in deleteTarget) (struct{}, error) {
		return struct{}{}, svc.Delete(ctx, in.ID)
	}, "categories", "foods")
	f.del.SuccessText = "Category deleted"

	return f
}

func defaultCategoryData() validation.CategoryPayload {
	return validation.CategoryPayload{Action: validation.ActionCreate}
}

func (f *CategoryForm) resetData() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = defaultCategoryData()
}

// Create opens the dialog in create mode.
func (f *CategoryForm) Create() {
	f.resetData()
	f.store.OpenDialog()
}

// Edit selects id, opens the dialog and loads the record into the form.
// A record deleted since the list was rendered falls back to create mode.
func (f *CategoryForm) Edit(ctx context.Context, id uint) error {
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
		f.data = defaultCategoryData()
	}
	return nil
}

func (f *CategoryForm) Data() validation.CategoryPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *CategoryForm) SetData(recipe func(*validation.CategoryPayload)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recipe(&f.data)
}

// Submit validates and saves the form. On success the dialog closes and
// the form resets; on failure the entered data stays put.
func (f *CategoryForm) Submit(ctx context.Context) error {
	_, err := f.save.Execute(ctx, f.Data())
	return err
}

func (f *CategoryForm) Pending() bool {
	return f.save.Pending()
}

// Delete asks for confirmation first; the mutation fires only on confirm.
func (f *CategoryForm) Delete(ctx context.Context, id uint, confirmer *confirm.Confirmer) {
	confirmer.Request(confirm.Config{
		Title:        "Delete category?",
		Description:  "Foods in this category will become uncategorized.",
		ConfirmLabel: "Delete",
		OnConfirm: func() {
			_, _ = f.del.Execute(ctx, deleteTarget{ID: id})
		},
	})
}
