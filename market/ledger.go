package market

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fave/models"
	"fave/store"
)

// Placeholder economics carried over from the demo marketplace. These are
// not real pricing: a settlement integration must replace them before any
// funds move.
const (
	priceMultiplier    = 50
	valueMultiplier    = 60
	fixedChangePercent = 20
)

const (
	minPercentForSale = 1
	maxPercentForSale = 100
)

// NameResolver supplies display names for artist IDs so purchased tokens can
// snapshot the artist's name at purchase time.
type NameResolver interface {
	UserName(ctx context.Context, id uuid.UUID) (string, error)
}

// Ledger maintains the Project and Token collections, with durability
// delegated to the store. Mutations are serialized by a mutex and follow
// read-validate-mutate-persist: a persist failure surfaces the error and the
// in-memory change is discarded, so readers never observe a half-applied
// write.
type Ledger struct {
	mu    sync.Mutex
	store store.Store
	names NameResolver
}

func NewLedger(s store.Store, names NameResolver) *Ledger {
	return &Ledger{store: s, names: names}
}

// AddProject validates form, constructs a pending Project owned by ownerID,
// appends it to the collection and persists. Returns the new Project.
func (l *Ledger) AddProject(ctx context.Context, form models.ProjectForm, ownerID uuid.UUID) (*models.Project, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	projects := l.loadProjects(ctx)

	project := models.Project{
		ID:             uuid.New(),
		ArtistID:       ownerID,
		Song:           form.Song,
		Distributor:    form.Distributor,
		Genre:          form.Genre,
		Description:    form.Description,
		ReleaseDate:    form.ReleaseDate,
		PercentForSale: form.PercentForSale,
		Status:         models.StatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	projects = append(projects, project)
	if err := store.WriteJSON(ctx, l.store, store.KeyMarketplaceProjects, projects); err != nil {
		return nil, err
	}

	log.Printf("Created project: %s (artist: %s, percent: %d)", project.ID, ownerID, project.PercentForSale)
	return &project, nil
}

// PurchaseToken records buyerID's purchase against projectID. Fails with
// ErrProjectNotFound and no mutation when the project does not exist. Price,
// value and change are computed from the project's percentForSale at
// purchase time and never recomputed.
func (l *Ledger) PurchaseToken(ctx context.Context, projectID, buyerID uuid.UUID) (*models.Token, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	projects := l.loadProjects(ctx)

	var project *models.Project
	for i := range projects {
		if projects[i].ID == projectID {
			project = &projects[i]
			break
		}
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	token := models.Token{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		OwnerID:     buyerID,
		ArtistID:    project.ArtistID,
		ArtistName:  l.artistName(ctx, project.ArtistID),
		Song:        project.Song,
		Percent:     project.PercentForSale,
		Price:       project.PercentForSale * priceMultiplier,
		Value:       project.PercentForSale * valueMultiplier,
		Change:      fixedChangePercent,
		PurchasedAt: time.Now().UTC(),
	}

	tokens := l.loadTokens(ctx)
	tokens = append(tokens, token)
	if err := store.WriteJSON(ctx, l.store, store.KeyUserTokens, tokens); err != nil {
		return nil, err
	}

	log.Printf("Purchased token: %s (project: %s, buyer: %s)", token.ID, projectID, buyerID)
	return &token, nil
}

// Projects returns every listing in insertion order.
func (l *Ledger) Projects(ctx context.Context) []models.Project {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadProjects(ctx)
}

// ProjectByID returns the listing with the given ID, or ErrProjectNotFound.
func (l *Ledger) ProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.loadProjects(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProjectNotFound
}

// ProjectsByOwner returns ownerID's listings, insertion order preserved.
func (l *Ledger) ProjectsByOwner(ctx context.Context, ownerID uuid.UUID) []models.Project {
	l.mu.Lock()
	defer l.mu.Unlock()

	owned := []models.Project{}
	for _, p := range l.loadProjects(ctx) {
		if p.ArtistID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned
}

// TokensByOwner returns userID's holdings, insertion order preserved.
func (l *Ledger) TokensByOwner(ctx context.Context, userID uuid.UUID) []models.Token {
	l.mu.Lock()
	defer l.mu.Unlock()

	owned := []models.Token{}
	for _, t := range l.loadTokens(ctx) {
		if t.OwnerID == userID {
			owned = append(owned, t)
		}
	}
	return owned
}

func (l *Ledger) loadProjects(ctx context.Context) []models.Project {
	projects := []models.Project{}
	store.ReadJSON(ctx, l.store, store.KeyMarketplaceProjects, &projects)
	return projects
}

func (l *Ledger) loadTokens(ctx context.Context) []models.Token {
	tokens := []models.Token{}
	store.ReadJSON(ctx, l.store, store.KeyUserTokens, &tokens)
	return tokens
}

func (l *Ledger) artistName(ctx context.Context, artistID uuid.UUID) string {
	if l.names == nil {
		return "Unknown Artist"
	}
	name, err := l.names.UserName(ctx, artistID)
	if err != nil || name == "" {
		return "Unknown Artist"
	}
	return name
}

func validateForm(form models.ProjectForm) error {
	if form.PercentForSale < minPercentForSale || form.PercentForSale > maxPercentForSale {
		return &ValidationError{Field: "percent_for_sale", Reason: "must be between 1 and 100"}
	}

	required := []struct {
		field string
		value string
	}{
		{"song", form.Song},
		{"distributor", form.Distributor},
		{"genre", form.Genre},
		{"description", form.Description},
		{"release_date", form.ReleaseDate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "must not be empty"}
		}
	}

	return nil
}
