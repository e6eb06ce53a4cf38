package services

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/utils"
)

/* ------------------------------------------------------------------
   In-memory repository fakes shared across the service tests
------------------------------------------------------------------ */

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) First(_ context.Context) (*models.User, error) {
	if len(f.users) == 0 {
		return nil, nil
	}
	return f.users[0], nil
}

func (f *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	u, _ := f.GetByUsername(ctx, username)
	return u != nil, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := f.GetByEmail(ctx, email)
	return u != nil, nil
}

func (f *fakeUserRepo) SetResetToken(ctx context.Context, id uuid.UUID, token *string) error {
	u, _ := f.GetByID(ctx, id)
	if u == nil {
		return utils.ErrNoRowsUpdated
	}
	u.ResetToken = token
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	u, _ := f.GetByID(ctx, id)
	if u == nil {
		return utils.ErrNoRowsUpdated
	}
	u.PasswordHash = passwordHash
	u.ResetToken = nil
	return nil
}

type fakeCityRepo struct {
	nextID int
	cities []*models.City
}

func (f *fakeCityRepo) Create(_ context.Context, c *models.City) error {
	f.nextID++
	c.ID = f.nextID
	clone := *c
	f.cities = append(f.cities, &clone)
	return nil
}

func (f *fakeCityRepo) GetByID(_ context.Context, id int) (*models.City, error) {
	for _, c := range f.cities {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeCityRepo) List(_ context.Context) ([]*models.City, error) {
	return f.cities, nil
}

func (f *fakeCityRepo) NameExists(_ context.Context, name string, excludeID int) (bool, error) {
	want := utils.NormalizeName(name)
	for _, c := range f.cities {
		if c.ID == excludeID {
			continue
		}
		if utils.NormalizeName(c.Name) == want {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCityRepo) Update(_ context.Context, c *models.City) error {
	for i, existing := range f.cities {
		if existing.ID == c.ID {
			clone := *c
			f.cities[i] = &clone
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

func (f *fakeCityRepo) Delete(_ context.Context, id int) error {
	for i, c := range f.cities {
		if c.ID == id {
			f.cities = append(f.cities[:i], f.cities[i+1:]...)
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

type fakeTypeRepo struct {
	nextID int
	types  []*models.PropertyType
}

func (f *fakeTypeRepo) Create(_ context.Context, t *models.PropertyType) error {
	f.nextID++
	t.ID = f.nextID
	clone := *t
	f.types = append(f.types, &clone)
	return nil
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id int) (*models.PropertyType, error) {
	for _, t := range f.types {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTypeRepo) List(_ context.Context) ([]*models.PropertyType, error) {
	return f.types, nil
}

func (f *fakeTypeRepo) NameExists(_ context.Context, name string, excludeID int) (bool, error) {
	want := utils.NormalizeName(name)
	for _, t := range f.types {
		if t.ID == excludeID {
			continue
		}
		if utils.NormalizeName(t.Name) == want {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTypeRepo) Update(_ context.Context, t *models.PropertyType) error {
	for i, existing := range f.types {
		if existing.ID == t.ID {
			clone := *t
			f.types[i] = &clone
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

func (f *fakeTypeRepo) Delete(_ context.Context, id int) error {
	for i, t := range f.types {
		if t.ID == id {
			f.types = append(f.types[:i], f.types[i+1:]...)
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

type fakeFurnRepo struct {
	nextID int
	types  []*models.FurnishingType
}

func (f *fakeFurnRepo) Create(_ context.Context, t *models.FurnishingType) error {
	f.nextID++
	t.ID = f.nextID
	clone := *t
	f.types = append(f.types, &clone)
	return nil
}

func (f *fakeFurnRepo) GetByID(_ context.Context, id int) (*models.FurnishingType, error) {
	for _, t := range f.types {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeFurnRepo) List(_ context.Context) ([]*models.FurnishingType, error) {
	return f.types, nil
}

func (f *fakeFurnRepo) NameExists(_ context.Context, name string, excludeID int) (bool, error) {
	want := utils.NormalizeName(name)
	for _, t := range f.types {
		if t.ID == excludeID {
			continue
		}
		if utils.NormalizeName(t.Name) == want {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFurnRepo) Update(_ context.Context, t *models.FurnishingType) error {
	for i, existing := range f.types {
		if existing.ID == t.ID {
			clone := *t
			f.types[i] = &clone
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

func (f *fakeFurnRepo) Delete(_ context.Context, id int) error {
	for i, t := range f.types {
		if t.ID == id {
			f.types = append(f.types[:i], f.types[i+1:]...)
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

type fakePropRepo struct {
	nextID int
	props  []*models.Property
	photos map[int][]*models.Photo
}

func newFakePropRepo() *fakePropRepo {
	return &fakePropRepo{photos: map[int][]*models.Photo{}}
}

func (f *fakePropRepo) Create(_ context.Context, p *models.Property) error {
	f.nextID++
	p.ID = f.nextID
	clone := *p
	f.props = append(f.props, &clone)
	return nil
}

func (f *fakePropRepo) GetByID(_ context.Context, id int) (*models.Property, error) {
	for _, p := range f.props {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakePropRepo) GetDetail(ctx context.Context, id int) (*models.Property, error) {
	p, err := f.GetByID(ctx, id)
	if p == nil || err != nil {
		return nil, err
	}
	for _, ph := range f.photos[id] {
		clone := *ph
		p.Photos = append(p.Photos, &clone)
	}
	return p, nil
}

func (f *fakePropRepo) ListBySellRent(ctx context.Context, sellRent int) ([]*models.Property, error) {
	var out []*models.Property
	for _, p := range f.props {
		if p.SellRent != sellRent {
			continue
		}
		detail, err := f.GetDetail(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (f *fakePropRepo) Update(_ context.Context, p *models.Property) error {
	for i, existing := range f.props {
		if existing.ID == p.ID {
			clone := *p
			clone.Photos = nil
			f.props[i] = &clone
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

func (f *fakePropRepo) Delete(_ context.Context, id int) error {
	for i, p := range f.props {
		if p.ID == id {
			f.props = append(f.props[:i], f.props[i+1:]...)
			delete(f.photos, id)
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

type fakePhotoRepo struct {
	prop   *fakePropRepo
	nextID int
}

func (f *fakePhotoRepo) Add(_ context.Context, ph *models.Photo) error {
	f.nextID++
	ph.ID = f.nextID
	clone := *ph
	f.prop.photos[ph.PropertyID] = append(f.prop.photos[ph.PropertyID], &clone)
	return nil
}

func (f *fakePhotoRepo) SetPrimary(_ context.Context, propertyID int, publicID, actorID string) error {
	var target *models.Photo
	for _, ph := range f.prop.photos[propertyID] {
		if ph.PublicID == publicID {
			target = ph
		}
	}
	if target == nil {
		return utils.ErrNoRowsUpdated
	}
	for _, ph := range f.prop.photos[propertyID] {
		ph.IsPrimary = false
	}
	target.IsPrimary = true
	target.LastUpdatedBy = actorID
	return nil
}

func (f *fakePhotoRepo) Delete(_ context.Context, photoID int) error {
	for propID, photos := range f.prop.photos {
		for i, ph := range photos {
			if ph.ID == photoID {
				f.prop.photos[propID] = append(photos[:i], photos[i+1:]...)
				return nil
			}
		}
	}
	return utils.ErrNoRowsUpdated
}

/* ------------------------------------------------------------------
   Media and mailer fakes
------------------------------------------------------------------ */

type fakeMedia struct {
	uploads  int
	deleted  []string
	failNext bool
}

func (f *fakeMedia) Upload(_ context.Context, _ io.Reader, _ int64, filename, _ string) (*UploadResult, error) {
	f.uploads++
	id := "obj-" + filename
	return &UploadResult{PublicID: id, URL: "https://media.test/" + id}, nil
}

func (f *fakeMedia) Delete(_ context.Context, publicID string) error {
	if f.failNext {
		f.failNext = false
		return errors.New("media host unavailable")
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendPasswordReset(toEmail, _, resetToken string) error {
	f.sent = append(f.sent, toEmail+":"+resetToken)
	return nil
}
