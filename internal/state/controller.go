package state

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arielstudio/nail-scheduler/internal/cache"
	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/metrics"
	"github.com/arielstudio/nail-scheduler/internal/models"
	"github.com/arielstudio/nail-scheduler/internal/store"
)

// Phase do ciclo de vida do controller.
type Phase string

const (
	PhaseUninitialized    Phase = "uninitialized"
	PhaseLoading          Phase = "loading"
	PhaseReady            Phase = "ready"
	PhaseReadyWithWarning Phase = "ready_with_warning"
)

// writeTask é uma propagação remota pendente, enfileirada por mutação.
type writeTask struct {
	label   string
	payload string
}

// Controller mantém o estado do site em memória e o sincroniza com o
// cache local e o store remoto.
//
// Política: toda mutação é otimista. Memória e cache local são sempre
// atualizados na hora; a escrita remota roda em segundo plano e uma
// falha nunca desfaz a mutação, apenas vira diagnóstico. Última escrita
// vence no store; não há serialização entre sessões admin concorrentes.
type Controller struct {
	mu       sync.RWMutex
	snapshot models.Snapshot
	phase    Phase

	// recordIDs mapeia label -> id do registro vigente no store, vindo
	// do fetch. Decide update-vs-insert nas escritas seguintes.
	recordIDs map[string]uint

	cache   cache.Cache
	store   store.Adapter
	diags   *Diagnostics
	metrics *metrics.Metrics
	log     zerolog.Logger

	queue   chan writeTask
	done    chan struct{}
	timeout time.Duration
}

func NewController(
	localCache cache.Cache,
	remote store.Adapter,
	m *metrics.Metrics,
	logger zerolog.Logger,
	remoteTimeout time.Duration,
) *Controller {

	if remoteTimeout <= 0 {
		remoteTimeout = 10 * time.Second
	}

	c := &Controller{
		snapshot: models.Snapshot{
			Services:     models.DefaultServices(),
			Appointments: []models.Appointment{},
			BlockedSlots: []models.BlockedSlot{},
			SiteConfig:   models.DefaultSiteConfig(),
		},
		phase:     PhaseUninitialized,
		recordIDs: make(map[string]uint),

		cache:   localCache,
		store:   remote,
		diags:   NewDiagnostics(50),
		metrics: m,
		log:     logger,

		queue:   make(chan writeTask, 64),
		done:    make(chan struct{}),
		timeout: remoteTimeout,
	}

	go c.worker()
	return c
}

// --------------------------------------------------
// Startup
// --------------------------------------------------

// Load inicializa o estado: primeiro o cache local (barato, evita tela
// vazia enquanto o remoto responde), depois um fetch remoto que, quando
// bem sucedido, sobrescreve coleção a coleção e renova o cache.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	c.phase = PhaseLoading
	c.mu.Unlock()

	c.loadFromCache(ctx)
	c.fetchRemote(ctx)
}

func (c *Controller) loadFromCache(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loadInto := func(key string, target any) {
		blob, found, err := c.cache.Load(ctx, key)
		if err != nil {
			c.diags.Record(KindCacheFailure, "cache local indisponível: "+err.Error())
			c.log.Warn().Err(err).Str("key", key).Msg("cache load failed")
			return
		}
		if !found {
			// cache-miss não é erro: valem os defaults embutidos
			return
		}
		if err := json.Unmarshal(blob, target); err != nil {
			c.diags.Record(KindCacheFailure, "entrada corrompida no cache local: "+key)
			c.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupted")
		}
	}

	loadInto(cache.KeyServices, &c.snapshot.Services)
	loadInto(cache.KeyAppointments, &c.snapshot.Appointments)
	loadInto(cache.KeyBlockedSlots, &c.snapshot.BlockedSlots)

	var cfg models.SiteConfig
	blob, found, err := c.cache.Load(ctx, cache.KeySiteConfig)
	if err == nil && found {
		if json.Unmarshal(blob, &cfg) == nil {
			c.snapshot.SiteConfig = cfg.WithDefaults()
		}
	}
}

func (c *Controller) fetchRemote(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	records, err := c.store.FetchAll(fetchCtx)
	if err != nil {
		c.recordRemoteFailure("fetch", err)
		c.metrics.IncFetch(resultFor(err))

		c.mu.Lock()
		c.phase = PhaseReadyWithWarning
		c.mu.Unlock()
		return
	}

	c.metrics.IncFetch(metrics.ResultOK)
	latest := store.LatestByLabel(records)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.applyRecord(ctx, latest, store.LabelServices, cache.KeyServices, &c.snapshot.Services)
	c.applyRecord(ctx, latest, store.LabelAppointments, cache.KeyAppointments, &c.snapshot.Appointments)
	c.applyRecord(ctx, latest, store.LabelBlocked, cache.KeyBlockedSlots, &c.snapshot.BlockedSlots)

	if rec, ok := latest[store.LabelConfig]; ok {
		var cfg models.SiteConfig
		if err := json.Unmarshal([]byte(rec.Content), &cfg); err != nil {
			c.diags.Record(KindRemoteUnreachable, "registro remoto ilegível: "+store.LabelConfig)
		} else {
			c.snapshot.SiteConfig = cfg.WithDefaults()
			c.saveCache(ctx, cache.KeySiteConfig, rec.Content)
		}
		c.recordIDs[store.LabelConfig] = rec.ID
	}

	c.phase = PhaseReady
}

// applyRecord sobrescreve uma coleção com o registro remoto mais recente
// e renova a entrada correspondente do cache. Chamado com o lock.
func (c *Controller) applyRecord(
	ctx context.Context,
	latest map[string]models.StoreRecord,
	label string,
	key string,
	target any,
) {
	rec, ok := latest[label]
	if !ok {
		return
	}

	if err := json.Unmarshal([]byte(rec.Content), target); err != nil {
		c.diags.Record(KindRemoteUnreachable, "registro remoto ilegível: "+label)
		c.log.Warn().Err(err).Str("label", label).Msg("remote record unreadable")
		return
	}

	c.recordIDs[label] = rec.ID
	c.saveCache(ctx, key, rec.Content)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (c *Controller) Snapshot() models.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Clone()
}

func (c *Controller) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

func (c *Controller) Diagnostics() []Diagnostic {
	return c.diags.List()
}

// --------------------------------------------------
// Mutations (otimistas)
// --------------------------------------------------

func (c *Controller) MutateServices(
	ctx context.Context,
	fn func([]models.Service) ([]models.Service, error),
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(append([]models.Service(nil), c.snapshot.Services...))
	if err != nil {
		return err
	}

	c.snapshot.Services = next
	c.persist(ctx, cache.KeyServices, store.LabelServices, next)
	return nil
}

func (c *Controller) MutateAppointments(
	ctx context.Context,
	fn func([]models.Appointment) ([]models.Appointment, error),
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(append([]models.Appointment(nil), c.snapshot.Appointments...))
	if err != nil {
		return err
	}

	c.snapshot.Appointments = next
	c.persist(ctx, cache.KeyAppointments, store.LabelAppointments, next)
	return nil
}

func (c *Controller) MutateBlockedSlots(
	ctx context.Context,
	fn func([]models.BlockedSlot) ([]models.BlockedSlot, error),
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(append([]models.BlockedSlot(nil), c.snapshot.BlockedSlots...))
	if err != nil {
		return err
	}

	c.snapshot.BlockedSlots = next
	c.persist(ctx, cache.KeyBlockedSlots, store.LabelBlocked, next)
	return nil
}

func (c *Controller) SetSiteConfig(ctx context.Context, cfg models.SiteConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	full := cfg.WithDefaults()
	c.snapshot.SiteConfig = full
	c.persist(ctx, cache.KeySiteConfig, store.LabelConfig, full)
	return nil
}

// persist grava o cache local de forma síncrona e enfileira a escrita
// remota. Falha de cache ou de fila vira diagnóstico; a mutação em
// memória nunca é desfeita. Chamado com o lock.
func (c *Controller) persist(ctx context.Context, key, label string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		// coleções são structs serializáveis; não deve acontecer
		c.diags.Record(KindCacheFailure, "falha ao serializar "+label)
		return
	}

	c.saveCache(ctx, key, string(payload))

	select {
	case c.queue <- writeTask{label: label, payload: string(payload)}:
		c.metrics.SyncQueueSize.Set(float64(len(c.queue)))
	default:
		c.diags.Record(KindRemoteUnreachable, "fila de sincronização cheia, escrita remota descartada: "+label)
		c.log.Warn().Str("label", label).Msg("sync queue full, dropping remote write")
	}
}

func (c *Controller) saveCache(ctx context.Context, key, payload string) {
	if err := c.cache.Save(ctx, key, []byte(payload)); err != nil {
		c.diags.Record(KindCacheFailure, "falha ao gravar cache local: "+key)
		c.log.Warn().Err(err).Str("key", key).Msg("cache save failed")
	}
}

// --------------------------------------------------
// Worker de propagação remota
// --------------------------------------------------

func (c *Controller) worker() {
	defer close(c.done)

	for task := range c.queue {
		c.metrics.SyncQueueSize.Set(float64(len(c.queue)))
		c.flush(task)
	}
}

// flush tenta upsert no registro vigente e cai para append quando o
// upsert falha; um append bem sucedido passa a ser o registro vigente.
func (c *Controller) flush(task writeTask) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	c.mu.RLock()
	recordID := c.recordIDs[task.label]
	c.mu.RUnlock()

	if recordID > 0 {
		if err := c.store.Upsert(ctx, recordID, task.label, task.payload); err == nil {
			c.metrics.IncWrite(metrics.ResultOK, task.label)
			return
		}
	}

	id, err := c.store.Append(ctx, task.label, task.payload)
	if err != nil {
		c.recordRemoteFailure(task.label, err)
		c.metrics.IncWrite(resultFor(err), task.label)
		return
	}

	c.mu.Lock()
	c.recordIDs[task.label] = id
	c.mu.Unlock()

	c.metrics.IncWrite(metrics.ResultOK, task.label)
}

func (c *Controller) recordRemoteFailure(scope string, err error) {
	if store.IsForbidden(err) {
		c.diags.Record(KindAccessForbidden,
			"o backend recusou a operação ("+scope+"): revise as permissões da tabela de registros")
		c.log.Error().Err(err).Str("scope", scope).Msg("remote store forbidden")
		return
	}

	c.diags.Record(KindRemoteUnreachable, "store remoto indisponível ("+scope+"): "+err.Error())
	c.log.Warn().Err(err).Str("scope", scope).Msg("remote store unavailable")
}

func resultFor(err error) string {
	if store.IsForbidden(err) {
		return metrics.ResultForbidden
	}
	return metrics.ResultError
}

// Close drena a fila de escritas pendentes e encerra o worker.
func (c *Controller) Close() {
	close(c.queue)
	<-c.done
}

// Compile-time check
var _ domain.State = (*Controller)(nil)
