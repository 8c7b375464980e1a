package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"urban_access/internal/models"
	"urban_access/internal/services"
)

const (
	DemoEmail    = "teste@urbanaccess.com"
	DemoPassword = "123456"
)

type categorySeed struct {
	name, description, icon string
}

var defaultCategories = []categorySeed{
	{"Calçada Danificada", "Problemas em calçadas como buracos, desníveis ou obstáculos", "sidewalk"},
	{"Falta de Rampa", "Ausência de rampas de acesso em locais necessários", "ramp"},
	{"Obstáculo na Via", "Objetos ou estruturas que impedem a passagem", "block"},
	{"Semáforo sem Sinal Sonoro", "Semáforos sem acessibilidade para deficientes visuais", "traffic_light"},
	{"Falta de Piso Tátil", "Ausência de piso tátil para orientação de deficientes visuais", "texture"},
	{"Vaga Inacessível", "Vagas para PCD mal projetadas ou obstruídas", "local_parking"},
	{"Transporte Público sem Acessibilidade", "Veículos ou estações sem adaptações necessárias", "directions_bus"},
}

// Seeder writes the category taxonomy and, optionally, a demo account with sample incidents.
// Every step can run on each startup.
type Seeder struct {
	db     *gorm.DB
	hasher services.PasswordHasher
	logger *logrus.Logger
	now    func() time.Time
}

func NewSeeder(db *gorm.DB, hasher services.PasswordHasher, logger *logrus.Logger) *Seeder {
	return &Seeder{db: db, hasher: hasher, logger: logger, now: time.Now}
}

func (s *Seeder) Run(ctx context.Context, demo bool) error {
	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	if !demo {
		return nil
	}
	return s.seedDemo(ctx)
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	categories := make([]models.Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		description, icon := c.description, c.icon
		categories = append(categories, models.Category{Name: c.name, Description: &description, Icon: &icon})
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&categories)
	if res.Error != nil {
		return fmt.Errorf("failed to seed categories: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		s.logger.WithField("count", res.RowsAffected).Info("Seeded categories")
	}
	return nil
}

func (s *Seeder) seedDemo(ctx context.Context) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", DemoEmail).First(&existing).Error
	switch {
	case err == nil:
		return s.refreshDemoPassword(ctx, &existing)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("failed to look up demo user: %w", err)
	}

	hash, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	now := s.now().UTC()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:         "Usuário Teste",
			Email:        DemoEmail,
			NationalID:   "123.456.789-00",
			Phone:        "(11) 98765-4321",
			PasswordHash: hash,
			RegisteredAt: daysAgo(30),
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create demo user: %w", err)
		}

		sidewalk, err := categoryID(tx, "Calçada Danificada")
		if err != nil {
			return err
		}
		ramp, err := categoryID(tx, "Falta de Rampa")
		if err != nil {
			return err
		}

		img1 := "https://picsum.photos/id/1/200/300"
		img2 := "https://picsum.photos/id/2/200/300"
		incidents := []models.Incident{
			{
				ReporterID:     user.ID,
				CategoryID:     sidewalk,
				Description:    "Calçada com buracos e sem acessibilidade",
				Address:        "Av. Paulista, 1000, São Paulo - SP",
				Latitude:       -23.5505,
				Longitude:      -46.6333,
				ImageURL:       &img1,
				CreatedAt:      daysAgo(15),
				Status:         models.StatusValidated,
				Urgent:         true,
				PublicLocation: true,
			},
			{
				ReporterID:     user.ID,
				CategoryID:     ramp,
				Description:    "Não há rampa de acesso na esquina",
				Address:        "Rua Augusta, 500, São Paulo - SP",
				Latitude:       -23.5505,
				Longitude:      -46.6333,
				ImageURL:       &img2,
				CreatedAt:      daysAgo(10),
				Status:         models.StatusAwaitingValidation,
				PublicLocation: true,
			},
		}
		if err := tx.Omit(clause.Associations).Create(&incidents).Error; err != nil {
			return fmt.Errorf("failed to create demo incidents: %w", err)
		}

		comment := "Confirmei pessoalmente este problema"
		validation := models.Validation{
			IncidentID:  incidents[0].ID,
			ValidatorID: user.ID,
			Comment:     &comment,
			ValidatedAt: daysAgo(12),
		}
		if err := tx.Omit(clause.Associations).Create(&validation).Error; err != nil {
			return fmt.Errorf("failed to create demo validation: %w", err)
		}

		s.logger.WithField("user_id", user.ID).Info("Seeded demo user with sample incidents")
		return nil
	})
}

// refreshDemoPassword rewrites the demo hash when it no longer matches DemoPassword.
func (s *Seeder) refreshDemoPassword(ctx context.Context, user *models.User) error {
	if s.hasher.Verify(user.PasswordHash, DemoPassword) {
		return nil
	}
	hash, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	err = s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("password_hash", hash).Error
	if err != nil {
		return fmt.Errorf("failed to refresh demo password: %w", err)
	}
	s.logger.WithField("user_id", user.ID).Info("Refreshed demo user password hash")
	return nil
}

func categoryID(tx *gorm.DB, name string) (uint, error) {
	var c models.Category
	if err := tx.Select("id").Where("name = ?", name).First(&c).Error; err != nil {
		return 0, fmt.Errorf("failed to find category %q: %w", name, err)
	}
	return c.ID, nil
}
