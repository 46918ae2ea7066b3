package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/config"
	"github.com/frontline-homeworks/backend/internal/infrastructure/memstore"
	"github.com/frontline-homeworks/backend/pkg/helpers"
	"github.com/frontline-homeworks/backend/pkg/mailer"
	"github.com/frontline-homeworks/backend/pkg/payments"
)

// app-level container to share constructed components across packages.
// The stores are process singletons: every module must see the same
// in-memory records.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	logRing     *helpers.RingHook
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	notifier   mailer.Notifier
	gateway    payments.Gateway

	userStore    *memstore.UserStore
	productStore *memstore.ProductStore
	orderStore   *memstore.OrderStore
	contactStore *memstore.ContactStore
)

func SetConfig(c *config.Config)     { cfg = c }
func GetConfig() *config.Config      { return cfg }
func SetLogger(l *logrus.Logger)     { logger = l }
func GetLogger() *logrus.Logger      { return logger }
func SetLogRing(h *helpers.RingHook) { logRing = h }
func GetLogRing() *helpers.RingHook  { return logRing }
func SetRedis(r *redis.Client)       { redisClient = r }
func GetRedis() *redis.Client        { return redisClient }
func SetJWT(m *helpers.JWTManager)   { jwtManager = m }
func GetJWT() *helpers.JWTManager    { return jwtManager }
func SetNotifier(n mailer.Notifier)  { notifier = n }
func GetNotifier() mailer.Notifier   { return notifier }
func SetGateway(g payments.Gateway)  { gateway = g }
func GetGateway() payments.Gateway   { return gateway }

func SetUserStore(s *memstore.UserStore)       { userStore = s }
func GetUserStore() *memstore.UserStore        { return userStore }
func SetProductStore(s *memstore.ProductStore) { productStore = s }
func GetProductStore() *memstore.ProductStore  { return productStore }
func SetOrderStore(s *memstore.OrderStore)     { orderStore = s }
func GetOrderStore() *memstore.OrderStore      { return orderStore }
func SetContactStore(s *memstore.ContactStore) { contactStore = s }
func GetContactStore() *memstore.ContactStore  { return contactStore }
