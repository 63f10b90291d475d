package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/availability"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// Результаты обращения к кэшу для метрик
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// Service сервис доступности бизнеса: проверка дат, календарь и управление расписанием
type Service struct {
	repo         AvailabilityRepository
	cache        ConfigCache
	txManager    TxManager
	timeProvider TimeProvider
	metrics      CacheMetrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности.
// cache и metrics могут быть nil.
func NewService(
	repo AvailabilityRepository,
	cache ConfigCache,
	txManager TxManager,
	timeProvider TimeProvider,
	metrics CacheMetrics,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		cache:        cache,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetConfig получает конфигурацию доступности бизнеса.
// Сначала ищет в кэше, затем в БД. Ошибки кэша не прерывают запрос.
// Версия читается до обращения к БД: если расписание изменится во время чтения,
// устаревшая конфигурация попадет под уже неактуальную версию.
func (s *Service) GetConfig(ctx context.Context, businessID string) (*domain.BusinessAvailabilityConfig, error) {
	// 1. Валидируем идентификатор
	if err := validateBusinessID(businessID); err != nil {
		return nil, err
	}

	// 2. Пробуем кэш
	version, cacheable := s.cacheVersion(ctx, businessID)
	if cacheable {
		cfg, err := s.cache.Get(ctx, businessID, version)
		switch {
		case err == nil:
			s.observeCache(cacheHit)
			s.logger.Debug("GetConfig: cache hit for business=%s version=%d", businessID, version)
			return cfg, nil
		case errors.Is(err, availabilityCache.ErrCacheMiss):
			s.observeCache(cacheMiss)
		default:
			s.observeCache(cacheError)
			s.logger.Warn("GetConfig: cache read failed for business=%s: %v", businessID, err)
		}
	}

	// 3. Читаем из БД
	cfg, err := s.repo.GetConfig(ctx, businessID)
	if err != nil {
		s.logger.Error("GetConfig: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}
	if cfg.IsEmpty() {
		s.logger.Debug("GetConfig: business=%s has no availability configured", businessID)
	}

	// 4. Кладем в кэш под прочитанной версией
	if cacheable {
		if err := s.cache.Set(ctx, businessID, version, cfg); err != nil {
			s.logger.Warn("GetConfig: cache write failed for business=%s: %v", businessID, err)
		}
	}

	return cfg, nil
}

// GetAvailability возвращает расписание и заблокированные даты бизнеса
func (s *Service) GetAvailability(ctx context.Context, businessID string) (*models.AvailabilityResponse, error) {
	cfg, err := s.GetConfig(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(businessID, cfg), nil
}

// CheckDate проверяет, можно ли забронировать дату (YYYY-MM-DD)
func (s *Service) CheckDate(ctx context.Context, businessID string, date string) (*models.DateEligibilityResponse, error) {
	today := s.timeProvider.Now()

	// 1. Парсим дату в часовом поясе текущего дня
	parsed, err := parseDate(date, today.Location())
	if err != nil {
		return nil, err
	}

	// 2. Получаем конфигурацию
	cfg, err := s.GetConfig(ctx, businessID)
	if err != nil {
		return nil, err
	}

	// 3. Применяем правила доступности
	decision := availability.Evaluate(parsed, cfg, today)
	if !decision.Bookable() {
		s.logger.Info("CheckDate: business=%s date=%s not bookable: %s", businessID, decision.Date, decision.Reason)
	}

	return models.FromDecision(businessID, decision), nil
}

// GetCalendar возвращает календарь месяца (YYYY-MM). Пустой month - текущий месяц.
func (s *Service) GetCalendar(ctx context.Context, businessID string, month string) (*models.CalendarResponse, error) {
	today := s.timeProvider.Now()

	// 1. Определяем месяц
	first := today
	if month != "" {
		parsed, err := parseMonth(month, today.Location())
		if err != nil {
			return nil, err
		}
		first = parsed
	}

	// 2. Получаем конфигурацию
	cfg, err := s.GetConfig(ctx, businessID)
	if err != nil {
		return nil, err
	}

	// 3. Строим сетку месяца
	cal := availability.MonthCalendar(first.Year(), first.Month(), cfg, today)
	return models.FromCalendar(businessID, cal), nil
}

// UpdateWeeklyAvailability заменяет недельное расписание бизнеса
func (s *Service) UpdateWeeklyAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("UpdateWeeklyAvailability: business=%s, entries=%d", req.BusinessID, len(req.Availability))

	// 1. Валидируем входные данные
	if err := validateBusinessID(req.BusinessID); err != nil {
		return nil, err
	}
	days, err := buildWeeklyAvailability(req.Availability)
	if err != nil {
		s.logger.Warn("UpdateWeeklyAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Заменяем расписание в сериализуемой транзакции
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.repo.ReplaceWeeklyAvailability(ctx, req.BusinessID, days)
	})
	if err != nil {
		s.logger.Error("UpdateWeeklyAvailability: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateWeeklyAvailability - repository error: %v", ErrInternal, err)
	}

	// 3. Сбрасываем кэш и возвращаем актуальную конфигурацию
	s.invalidate(ctx, req.BusinessID)

	s.logger.Info("UpdateWeeklyAvailability: business=%s updated", req.BusinessID)
	return s.GetAvailability(ctx, req.BusinessID)
}

// BlockDate блокирует дату для бронирования
func (s *Service) BlockDate(ctx context.Context, req *models.BlockDateRequest) error {
	if err := validateBusinessID(req.BusinessID); err != nil {
		return err
	}
	date, err := parseDate(req.Date, s.timeProvider.Now().Location())
	if err != nil {
		return err
	}
	iso := date.Format(domain.DateFormat)

	if err := s.repo.AddBlockedDate(ctx, req.BusinessID, iso); err != nil {
		if errors.Is(err, availabilityRepo.ErrBlockedDateExists) {
			return ErrDateAlreadyBlocked
		}
		s.logger.Error("BlockDate: repository error: %v", err)
		return fmt.Errorf("%w: BlockDate - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, req.BusinessID)
	s.logger.Info("BlockDate: business=%s date=%s blocked", req.BusinessID, iso)
	return nil
}

// UnblockDate снимает блокировку с даты
func (s *Service) UnblockDate(ctx context.Context, businessID string, date string) error {
	if err := validateBusinessID(businessID); err != nil {
		return err
	}
	parsed, err := parseDate(date, s.timeProvider.Now().Location())
	if err != nil {
		return err
	}
	iso := parsed.Format(domain.DateFormat)

	if err := s.repo.RemoveBlockedDate(ctx, businessID, iso); err != nil {
		if errors.Is(err, availabilityRepo.ErrBlockedDateNotFound) {
			return ErrDateNotBlocked
		}
		s.logger.Error("UnblockDate: repository error: %v", err)
		return fmt.Errorf("%w: UnblockDate - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, businessID)
	s.logger.Info("UnblockDate: business=%s date=%s unblocked", businessID, iso)
	return nil
}

// cacheVersion возвращает текущую версию кэша; false - кэш не используется
func (s *Service) cacheVersion(ctx context.Context, businessID string) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	version, err := s.cache.Version(ctx, businessID)
	if err != nil {
		s.observeCache(cacheError)
		s.logger.Warn("GetConfig: cache version read failed for business=%s: %v", businessID, err)
		return 0, false
	}
	return version, true
}

func (s *Service) invalidate(ctx context.Context, businessID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, businessID); err != nil {
		s.logger.Warn("cache invalidation failed for business=%s: %v", businessID, err)
	}
}

func (s *Service) observeCache(result string) {
	if s.metrics != nil {
		s.metrics.ObserveCache(result)
	}
}
