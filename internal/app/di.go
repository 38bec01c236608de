package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/Radek987976/hyperbare-manager/internal/closer"
	"github.com/Radek987976/hyperbare-manager/internal/config"
	"github.com/Radek987976/hyperbare-manager/internal/model"
	"github.com/Radek987976/hyperbare-manager/internal/notifier"
	equipmentrepo "github.com/Radek987976/hyperbare-manager/internal/repository/equipment"
	inspectionrepo "github.com/Radek987976/hyperbare-manager/internal/repository/inspection"
	interventionrepo "github.com/Radek987976/hyperbare-manager/internal/repository/intervention"
	sparepartrepo "github.com/Radek987976/hyperbare-manager/internal/repository/sparepart"
	userrepo "github.com/Radek987976/hyperbare-manager/internal/repository/user"
	vesselrepo "github.com/Radek987976/hyperbare-manager/internal/repository/vessel"
	workorderrepo "github.com/Radek987976/hyperbare-manager/internal/repository/workorder"
	"github.com/Radek987976/hyperbare-manager/internal/schedule"
	alertsvc "github.com/Radek987976/hyperbare-manager/internal/service/alert"
	authsvc "github.com/Radek987976/hyperbare-manager/internal/service/auth"
	dashboardsvc "github.com/Radek987976/hyperbare-manager/internal/service/dashboard"
	equipmentsvc "github.com/Radek987976/hyperbare-manager/internal/service/equipment"
	inspectionsvc "github.com/Radek987976/hyperbare-manager/internal/service/inspection"
	interventionsvc "github.com/Radek987976/hyperbare-manager/internal/service/intervention"
	sparepartsvc "github.com/Radek987976/hyperbare-manager/internal/service/sparepart"
	vesselsvc "github.com/Radek987976/hyperbare-manager/internal/service/vessel"
	workordersvc "github.com/Radek987976/hyperbare-manager/internal/service/workorder"
	authhttp "github.com/Radek987976/hyperbare-manager/internal/transport/http/auth/v1"
	dashboardhttp "github.com/Radek987976/hyperbare-manager/internal/transport/http/dashboard/v1"
	equipmenthttp "github.com/Radek987976/hyperbare-manager/internal/transport/http/equipment/v1"
	inspectionhttp "github.com/Radek987976/hyperbare-manager/internal/transport/http/inspection/v1"
	interventionhttp "github.com/Radek987976/hyperbare-manager/internal/transport/http/intervention/v1"
	sparephttp "github.com/Radek987976/hyperbare-manager/internal/transport/http/sparepart/v1"
	vesselhttp "github.com/Radek987976/hyperbare-manager/internal/transport/http/vessel/v1"
	workorderhttp "github.com/Radek987976/hyperbare-manager/internal/transport/http/workorder/v1"
)

// Repository unions: one Mongo-backed repository per collection serves
// every service that touches it, so the di holds the widest interface.
type WorkOrderRepository interface {
	workordersvc.WorkOrderRepository
	SetStatus(ctx context.Context, id string, status model.WorkOrderStatus) error
}

type InspectionRepository interface {
	inspectionsvc.InspectionRepository
	SetCompletion(ctx context.Context, id, completionDate, validityDate, result string) error
}

type SparePartRepository interface {
	sparepartsvc.SparePartRepository
	SetStock(ctx context.Context, id string, quantity int) error
}

type AuthService interface {
	authhttp.AuthService
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type AuthHandler interface {
	Routes() chi.Router
	UserRoutes() chi.Router
	Me(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	Routes() chi.Router
}

type di struct {
	mongo *mongo.Client

	equipmentRepo    equipmentsvc.EquipmentRepository
	workOrderRepo    WorkOrderRepository
	inspectionRepo   InspectionRepository
	interventionRepo interventionsvc.InterventionRepository
	sparePartRepo    SparePartRepository
	userRepo         authsvc.UserRepository
	vesselRepo       vesselsvc.VesselRepository

	calc     *schedule.Calculator
	tracked  map[string]bool
	notifier equipmentsvc.Notifier

	equipmentSvc    equipmenthttp.EquipmentService
	workOrderSvc    workorderhttp.WorkOrderService
	inspectionSvc   inspectionhttp.InspectionService
	interventionSvc interventionhttp.InterventionService
	sparePartSvc    sparephttp.SparePartService
	vesselSvc       vesselhttp.VesselService
	dashboardSvc    dashboardhttp.DashboardService
	alertSvc        dashboardhttp.AlertService
	authSvc         AuthService

	authHandler         AuthHandler
	vesselHandler       Handler
	equipmentHandler    Handler
	workOrderHandler    Handler
	inspectionHandler   Handler
	interventionHandler Handler
	sparePartHandler    Handler
	dashboardHandler    Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) collection(ctx context.Context, name string) *mongo.Collection {
	return d.MongoDB(ctx).
		Database(config.C().Mongo.DatabaseName()).
		Collection(name)
}

func (d *di) EquipmentRepository(ctx context.Context) equipmentsvc.EquipmentRepository {
	if d.equipmentRepo == nil {
		coll := d.collection(ctx, equipmentrepo.Collection)
		if err := ensureIndexes(ctx, coll, "vessel_id", "type", "status"); err != nil {
			panic(fmt.Sprintf("failed to ensure equipment indexes: %v\n", err))
		}
		d.equipmentRepo = equipmentrepo.NewEquipmentRepository(coll)
	}

	return d.equipmentRepo
}

func (d *di) WorkOrderRepository(ctx context.Context) WorkOrderRepository {
	if d.workOrderRepo == nil {
		coll := d.collection(ctx, workorderrepo.Collection)
		if err := ensureIndexes(ctx, coll, "status", "equipment_id", "planned_date"); err != nil {
			panic(fmt.Sprintf("failed to ensure work order indexes: %v\n", err))
		}
		d.workOrderRepo = workorderrepo.NewWorkOrderRepository(coll)
	}

	return d.workOrderRepo
}

func (d *di) InspectionRepository(ctx context.Context) InspectionRepository {
	if d.inspectionRepo == nil {
		d.inspectionRepo = inspectionrepo.NewInspectionRepository(
			d.collection(ctx, inspectionrepo.Collection))
	}

	return d.inspectionRepo
}

func (d *di) InterventionRepository(ctx context.Context) interventionsvc.InterventionRepository {
	if d.interventionRepo == nil {
		d.interventionRepo = interventionrepo.NewInterventionRepository(
			d.collection(ctx, interventionrepo.Collection))
	}

	return d.interventionRepo
}

func (d *di) SparePartRepository(ctx context.Context) SparePartRepository {
	if d.sparePartRepo == nil {
		d.sparePartRepo = sparepartrepo.NewSparePartRepository(
			d.collection(ctx, sparepartrepo.Collection))
	}

	return d.sparePartRepo
}

func (d *di) UserRepository(ctx context.Context) authsvc.UserRepository {
	if d.userRepo == nil {
		coll := d.collection(ctx, userrepo.Collection)
		if err := ensureIndexes(ctx, coll, "email"); err != nil {
			panic(fmt.Sprintf("failed to ensure user indexes: %v\n", err))
		}
		d.userRepo = userrepo.NewUserRepository(coll)
	}

	return d.userRepo
}

func (d *di) VesselRepository(ctx context.Context) vesselsvc.VesselRepository {
	if d.vesselRepo == nil {
		d.vesselRepo = vesselrepo.NewVesselRepository(
			d.collection(ctx, vesselrepo.Collection))
	}

	return d.vesselRepo
}

func (d *di) Calculator(_ context.Context) *schedule.Calculator {
	if d.calc == nil {
		d.calc = schedule.NewCalculator(schedule.DefaultTable())
	}

	return d.calc
}

func (d *di) TrackedTypes(_ context.Context) map[string]bool {
	if d.tracked == nil {
		d.tracked = equipmentsvc.DefaultTrackedTypes()
	}

	return d.tracked
}

func (d *di) Notifier(_ context.Context) equipmentsvc.Notifier {
	if d.notifier == nil {
		d.notifier = notifier.NewMailSender(config.C().SMTP)
	}

	return d.notifier
}

func (d *di) EquipmentService(ctx context.Context) equipmenthttp.EquipmentService {
	if d.equipmentSvc == nil {
		d.equipmentSvc = equipmentsvc.NewEquipmentService(
			d.EquipmentRepository(ctx),
			d.WorkOrderRepository(ctx),
			d.UserRepository(ctx),
			d.Notifier(ctx),
			d.TrackedTypes(ctx),
		)
	}

	return d.equipmentSvc
}

func (d *di) WorkOrderService(ctx context.Context) workorderhttp.WorkOrderService {
	if d.workOrderSvc == nil {
		d.workOrderSvc = workordersvc.NewWorkOrderService(d.WorkOrderRepository(ctx))
	}

	return d.workOrderSvc
}

func (d *di) InspectionService(ctx context.Context) inspectionhttp.InspectionService {
	if d.inspectionSvc == nil {
		d.inspectionSvc = inspectionsvc.NewInspectionService(
			d.InspectionRepository(ctx),
			d.Calculator(ctx),
		)
	}

	return d.inspectionSvc
}

func (d *di) InterventionService(ctx context.Context) interventionhttp.InterventionService {
	if d.interventionSvc == nil {
		d.interventionSvc = interventionsvc.NewInterventionService(
			d.InterventionRepository(ctx),
			d.WorkOrderRepository(ctx),
			d.InspectionRepository(ctx),
			d.SparePartRepository(ctx),
			d.EquipmentRepository(ctx),
			d.EquipmentService(ctx),
			d.Calculator(ctx),
		)
	}

	return d.interventionSvc
}

func (d *di) SparePartService(ctx context.Context) sparephttp.SparePartService {
	if d.sparePartSvc == nil {
		d.sparePartSvc = sparepartsvc.NewSparePartService(d.SparePartRepository(ctx))
	}

	return d.sparePartSvc
}

func (d *di) VesselService(ctx context.Context) vesselhttp.VesselService {
	if d.vesselSvc == nil {
		d.vesselSvc = vesselsvc.NewVesselService(d.VesselRepository(ctx))
	}

	return d.vesselSvc
}

func (d *di) DashboardService(ctx context.Context) dashboardhttp.DashboardService {
	if d.dashboardSvc == nil {
		d.dashboardSvc = dashboardsvc.NewDashboardService(
			d.EquipmentRepository(ctx),
			d.WorkOrderRepository(ctx),
			d.SparePartRepository(ctx),
			d.TrackedTypes(ctx),
		)
	}

	return d.dashboardSvc
}

func (d *di) AlertService(ctx context.Context) dashboardhttp.AlertService {
	if d.alertSvc == nil {
		d.alertSvc = alertsvc.NewAlertService(
			d.SparePartRepository(ctx),
			d.InspectionRepository(ctx),
			d.WorkOrderRepository(ctx),
			d.EquipmentRepository(ctx),
		)
	}

	return d.alertSvc
}

func (d *di) AuthService(ctx context.Context) AuthService {
	if d.authSvc == nil {
		cfg := config.C()
		d.authSvc = authsvc.NewAuthService(
			d.UserRepository(ctx),
			cfg.Auth.JWTSecret(),
			cfg.Auth.TokenTTL(),
		)
	}

	return d.authSvc
}

func (d *di) AuthHandler(ctx context.Context) AuthHandler {
	if d.authHandler == nil {
		d.authHandler = authhttp.NewAuthHandler(d.AuthService(ctx))
	}

	return d.authHandler
}

func (d *di) VesselHandler(ctx context.Context) Handler {
	if d.vesselHandler == nil {
		d.vesselHandler = vesselhttp.NewVesselHandler(d.VesselService(ctx))
	}

	return d.vesselHandler
}

func (d *di) EquipmentHandler(ctx context.Context) Handler {
	if d.equipmentHandler == nil {
		d.equipmentHandler = equipmenthttp.NewEquipmentHandler(d.EquipmentService(ctx))
	}

	return d.equipmentHandler
}

func (d *di) WorkOrderHandler(ctx context.Context) Handler {
	if d.workOrderHandler == nil {
		d.workOrderHandler = workorderhttp.NewWorkOrderHandler(d.WorkOrderService(ctx))
	}

	return d.workOrderHandler
}

func (d *di) InspectionHandler(ctx context.Context) Handler {
	if d.inspectionHandler == nil {
		d.inspectionHandler = inspectionhttp.NewInspectionHandler(d.InspectionService(ctx))
	}

	return d.inspectionHandler
}

func (d *di) InterventionHandler(ctx context.Context) Handler {
	if d.interventionHandler == nil {
		d.interventionHandler = interventionhttp.NewInterventionHandler(d.InterventionService(ctx))
	}

	return d.interventionHandler
}

func (d *di) SparePartHandler(ctx context.Context) Handler {
	if d.sparePartHandler == nil {
		d.sparePartHandler = sparephttp.NewSparePartHandler(d.SparePartService(ctx))
	}

	return d.sparePartHandler
}

func (d *di) DashboardHandler(ctx context.Context) Handler {
	if d.dashboardHandler == nil {
		d.dashboardHandler = dashboardhttp.NewDashboardHandler(
			d.DashboardService(ctx),
			d.AlertService(ctx),
		)
	}

	return d.dashboardHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func ensureIndexes(ctx context.Context, coll *mongo.Collection, keys ...string) error {
	models := make([]mongo.IndexModel, 0, len(keys))
	for _, key := range keys {
		models = append(models, mongo.IndexModel{
			Keys: bson.D{{Key: key, Value: 1}},
		})
	}

	_, err := coll.Indexes().CreateMany(ctx, models, options.CreateIndexes())
	return err
}
