package tui

import (
	"github.com/kelola-aset/kelola/internal/apiclient"
	"github.com/kelola-aset/kelola/internal/export"
	"github.com/kelola-aset/kelola/internal/session"
)

// BuildApp assembles the full page set behind the session gate. The
// dashboard is the landing page; an absent or expired session lands on
// login instead.
func BuildApp(client *apiclient.Client, store *session.Store, exportDir string, overrides export.OverrideFile, pageSize int) *App {
	deps := Deps{
		Client:    client,
		ExportDir: exportDir,
		Overrides: overrides,
		PageSize:  pageSize,
	}

	var userName string
	if st, ok := store.Load(); ok {
		userName = st.User.FullName
	}

	return NewApp(session.NewGate(store),
		newDashboardPage(client, userName),
		newAssetsPage(deps),
		newPlansPage(deps),
		newMaintenancePage(deps),
		newHistoryPage(deps),
		newFacilitiesPage(deps),
		newLoginPage(client, store),
	)
}
