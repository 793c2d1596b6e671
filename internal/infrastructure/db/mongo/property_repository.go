package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
)

const (
	collectionSites     = "sites"
	collectionBuildings = "buildings"
	collectionUnits     = "building_units"
	collectionOwners    = "owners"
)

// --- Sites ---

type SiteRepository struct {
	col *mongo.Collection
}

func NewSiteRepository(db *mongo.Database) *SiteRepository {
	return &SiteRepository{col: db.Collection(collectionSites)}
}

func (r *SiteRepository) FindByID(ctx context.Context, id string) (*domain.Site, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var site domain.Site
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&site); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, fmt.Errorf("find site: %w", err)
	}
	return &site, nil
}

func (r *SiteRepository) List(ctx context.Context) ([]domain.Site, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer cur.Close(ctx)

	var sites []domain.Site
	if err := cur.All(ctx, &sites); err != nil {
		return nil, fmt.Errorf("decode sites: %w", err)
	}
	return sites, nil
}

func (r *SiteRepository) Create(ctx context.Context, site *domain.Site) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, site); err != nil {
		return fmt.Errorf("insert site: %w", err)
	}
	return nil
}

func (r *SiteRepository) Update(ctx context.Context, site *domain.Site) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": site.ID}, site)
	if err != nil {
		return fmt.Errorf("update site: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

func (r *SiteRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

// --- Buildings ---

type BuildingRepository struct {
	col *mongo.Collection
}

func NewBuildingRepository(db *mongo.Database) *BuildingRepository {
	return &BuildingRepository{col: db.Collection(collectionBuildings)}
}

func (r *BuildingRepository) FindByID(ctx context.Context, id string) (*domain.Building, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var building domain.Building
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&building); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("find building: %w", err)
	}
	return &building, nil
}

func (r *BuildingRepository) List(ctx context.Context) ([]domain.Building, error) {
	return r.list(ctx, bson.M{})
}

func (r *BuildingRepository) ListBySite(ctx context.Context, siteID string) ([]domain.Building, error) {
	return r.list(ctx, bson.M{"site_id": siteID})
}

func (r *BuildingRepository) list(ctx context.Context, filter bson.M) ([]domain.Building, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	defer cur.Close(ctx)

	var buildings []domain.Building
	if err := cur.All(ctx, &buildings); err != nil {
		return nil, fmt.Errorf("decode buildings: %w", err)
	}
	return buildings, nil
}

func (r *BuildingRepository) Create(ctx context.Context, building *domain.Building) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, building); err != nil {
		return fmt.Errorf("insert building: %w", err)
	}
	return nil
}

func (r *BuildingRepository) Update(ctx context.Context, building *domain.Building) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": building.ID}, building)
	if err != nil {
		return fmt.Errorf("update building: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBuildingNotFound
	}
	return nil
}

func (r *BuildingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete building: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBuildingNotFound
	}
	return nil
}

// EnsureIndexes creates the site_id lookup index.
func (r *BuildingRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "site_id", Value: 1}},
	})
	return err
}

// --- Building units ---

type UnitRepository struct {
	col *mongo.Collection
}

func NewUnitRepository(db *mongo.Database) *UnitRepository {
	return &UnitRepository{col: db.Collection(collectionUnits)}
}

func (r *UnitRepository) FindByID(ctx context.Context, id string) (*domain.BuildingUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var unit domain.BuildingUnit
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&unit); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, fmt.Errorf("find unit: %w", err)
	}
	return &unit, nil
}

func (r *UnitRepository) List(ctx context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.BuildingID != "" {
		query["building_id"] = filter.BuildingID
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "unit_number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer cur.Close(ctx)

	var units []domain.BuildingUnit
	if err := cur.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("decode units: %w", err)
	}
	return units, nil
}

func (r *UnitRepository) Create(ctx context.Context, unit *domain.BuildingUnit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, unit); err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

func (r *UnitRepository) Update(ctx context.Context, unit *domain.BuildingUnit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": unit.ID}, unit)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *UnitRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing unit filters.
func (r *UnitRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "building_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// --- Owners ---

type OwnerRepository struct {
	col *mongo.Collection
}

func NewOwnerRepository(db *mongo.Database) *OwnerRepository {
	return &OwnerRepository{col: db.Collection(collectionOwners)}
}

func (r *OwnerRepository) FindByID(ctx context.Context, id string) (*domain.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var owner domain.Owner
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&owner); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	return &owner, nil
}

func (r *OwnerRepository) List(ctx context.Context) ([]domain.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer cur.Close(ctx)

	var owners []domain.Owner
	if err := cur.All(ctx, &owners); err != nil {
		return nil, fmt.Errorf("decode owners: %w", err)
	}
	return owners, nil
}

func (r *OwnerRepository) Create(ctx context.Context, owner *domain.Owner) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, owner); err != nil {
		return fmt.Errorf("insert owner: %w", err)
	}
	return nil
}

func (r *OwnerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": owner.ID}, owner)
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOwnerNotFound
	}
	return nil
}

func (r *OwnerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOwnerNotFound
	}
	return nil
}
