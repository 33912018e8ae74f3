package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userlist/internal/client/services"
)

var (
	ErrUsage       = errors.New("usage")
	ErrUnknownUser = errors.New("unknown user")
)

func (a *App) List(ctx context.Context) error {
	list := a.users.Users()
	if len(list) == 0 {
		printlnFn("Loading users...")
		return nil
	}

	edit := a.users.Edit()
	for _, u := range list {
		if edit.Editing && edit.ActiveID == u.ID {
			printlnFn(fmt.Sprintf("* %s\t[%s]\tJoined: %s", u.ID, edit.DraftName, u.Joined()))
			continue
		}
		printlnFn("  " + u.String())
	}
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	if err := a.users.Load(ctx); err != nil {
		return err
	}
	a.saveSnapshot(ctx)
	return nil
}

// Add sends the rest of the line as the new name. An empty line still goes
// through the service so the empty-name rule is reported the usual way.
func (a *App) Add(ctx context.Context, args []string) error {
	a.users.SetDraft(strings.Join(args, " "))
	if err := a.users.Add(ctx, a.users.Draft()); err != nil {
		return err
	}
	a.saveSnapshot(ctx)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: edit <id>")
		return ErrUsage
	}

	u, ok := a.users.Find(args[0])
	if !ok {
		printlnFn("No user with id", args[0])
		return ErrUnknownUser
	}

	a.users.BeginEdit(u.ID, u.Name)
	printlnFn(fmt.Sprintf("Editing %s (%s). Use 'name <text>' then 'save', or 'cancel'.", u.ID, u.Name))
	return nil
}

func (a *App) Rename(ctx context.Context, args []string) error {
	if !a.users.Edit().Editing {
		printlnFn("Nothing is being edited: use 'edit <id>' first")
		return services.ErrNoActiveEdit
	}
	a.users.SetEditDraft(strings.Join(args, " "))
	return nil
}

func (a *App) Save(ctx context.Context) error {
	err := a.users.SaveEdit(ctx)
	if errors.Is(err, services.ErrNoActiveEdit) {
		printlnFn("Nothing to save: use 'edit <id>' first")
		return err
	}
	if err != nil {
		return err
	}
	a.saveSnapshot(ctx)
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	a.users.CancelEdit()
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: delete <id>")
		return ErrUsage
	}
	if err := a.users.Remove(ctx, args[0]); err != nil {
		return err
	}
	a.saveSnapshot(ctx)
	return nil
}

func (a *App) Cached(ctx context.Context) error {
	if a.snapshots == nil {
		printlnFn("No snapshot saved yet")
		return nil
	}

	at, err := a.snapshots.SavedAt(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read snapshot", "err", err)
		return err
	}
	if at.IsZero() {
		printlnFn("No snapshot saved yet")
		return nil
	}

	list, err := a.snapshots.GetAll(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read snapshot", "err", err)
		return err
	}

	printlnFn(fmt.Sprintf("Snapshot from %s (%d users):", at.Local().Format("2006-01-02 15:04:05"), len(list)))
	for _, u := range list {
		printlnFn("  " + u.String())
	}
	return nil
}
