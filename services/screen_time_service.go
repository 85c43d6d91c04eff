package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GuardianMobile/models"
	"GuardianMobile/repositories"
)

const dateLayout = "2006-01-02"

// LimitNotifier уведомления, которые трекер рассылает как побочный
// эффект записи. Реализации обязаны проглатывать ошибки доставки:
// к моменту вызова лимит уже сохранен.
type LimitNotifier interface {
	NotifyAppLimitChanged(ctx context.Context, deviceID, appName string, limitMinutes *int)
	NotifyScreenTimeLimitChanged(ctx context.Context, deviceID string, limitMinutes *int)
	NotifyAppLimitExceeded(ctx context.Context, childID, appName string, usedMinutes, limitMinutes int)
	NotifyScreenTimeExceeded(ctx context.Context, childID string, totalMinutes, limitMinutes int)
}

// ScreenTimeService трекер дневных лимитов экранного времени.
// Планировщика нет: счетчики сбрасываются лениво при первой записи
// с новой календарной датой.
type ScreenTimeService struct {
	UsageRepo repositories.UsageRepository
	Notifier  LimitNotifier

	// Now подменяется в тестах, чтобы управлять сменой даты.
	Now func() time.Time
}

func NewScreenTimeService(usageRepo repositories.UsageRepository, notifier LimitNotifier) *ScreenTimeService {
	return &ScreenTimeService{
		UsageRepo: usageRepo,
		Notifier:  notifier,
		Now:       time.Now,
	}
}

func (s *ScreenTimeService) today() string {
	return s.Now().Format(dateLayout)
}

// applyEntryLimit применяет к записи ленивый дневной сброс и новый лимит.
// Повторный вызов в тот же день с тем же лимитом ничего не меняет.
func applyEntryLimit(entry *models.AppUsageEntry, limitMinutes *int, today string) {
	if entry.LastResetDate != today {
		entry.UsageMinutes = 0
		entry.Blocked = false
	}
	entry.LimitMinutes = limitMinutes
	entry.Blocked = limitMinutes != nil && entry.UsageMinutes >= *limitMinutes
	entry.LastResetDate = today
	entry.Status = usageStatus(entry.Blocked)
	entry.TimePeriod = models.TimePeriodDaily
}

func usageStatus(blocked bool) string {
	if blocked {
		return models.UsageStatusBlocked
	}
	return models.UsageStatusActive
}

func findEntryByName(apps []models.AppUsageEntry, appName string) int {
	for i := range apps {
		if apps[i].Name == appName {
			return i
		}
	}
	return -1
}

func findEntryByPackage(apps []models.AppUsageEntry, packageName string) int {
	for i := range apps {
		if apps[i].PackageName == packageName {
			return i
		}
	}
	return -1
}

func (s *ScreenTimeService) loadOrInitUsage(ctx context.Context, deviceID string) (models.DeviceUsage, error) {
	usage, err := s.UsageRepo.FindUsage(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return models.DeviceUsage{}, fmt.Errorf("reading usage for %s: %w", deviceID, err)
		}
		usage = models.DeviceUsage{
			DeviceID: deviceID,
			Apps:     []models.AppUsageEntry{},
			ScreenTime: models.AggregateScreenTime{
				LastResetDate: s.today(),
				Status:        models.UsageStatusActive,
				TimePeriod:    models.TimePeriodDaily,
			},
		}
	}
	return usage, nil
}

func (s *ScreenTimeService) loadOrInitLimits(ctx context.Context, deviceID string) (models.AppLimits, error) {
	limits, err := s.UsageRepo.FindLimits(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return models.AppLimits{}, fmt.Errorf("reading pull limits for %s: %w", deviceID, err)
		}
		limits = models.AppLimits{DeviceID: deviceID}
	}
	if limits.Limits == nil {
		limits.Limits = map[string]int{}
	}
	return limits, nil
}

// SetAppLimit ставит или снимает дневной лимит приложения на детском
// устройстве. Запись ищется по имени приложения, отсутствующая
// создается с нулевым счетчиком. Если у записи известен package,
// pull-карта лимитов обновляется тем же батчем и разойтись с
// встроенным лимитом не может.
func (s *ScreenTimeService) SetAppLimit(ctx context.Context, deviceID, appName string, limitMinutes *int, packageName string) (models.AppUsageEntry, error) {
	if deviceID == "" {
		return models.AppUsageEntry{}, ErrDeviceIDRequired
	}
	if appName == "" {
		return models.AppUsageEntry{}, ErrAppNameRequired
	}
	if limitMinutes != nil && *limitMinutes <= 0 {
		return models.AppUsageEntry{}, ErrInvalidLimit
	}

	usage, err := s.loadOrInitUsage(ctx, deviceID)
	if err != nil {
		return models.AppUsageEntry{}, err
	}

	today := s.today()
	idx := findEntryByName(usage.Apps, appName)
	if idx < 0 {
		usage.Apps = append(usage.Apps, models.AppUsageEntry{
			Name:        appName,
			PackageName: packageName,
		})
		idx = len(usage.Apps) - 1
	}

	entry := &usage.Apps[idx]
	if packageName != "" {
		entry.PackageName = packageName
	}
	applyEntryLimit(entry, limitMinutes, today)

	usage.DeviceID = deviceID
	usage.UpdatedAt = s.Now()

	if entry.PackageName != "" {
		limits, err := s.loadOrInitLimits(ctx, deviceID)
		if err != nil {
			return models.AppUsageEntry{}, err
		}
		if limitMinutes != nil {
			limits.Limits[entry.PackageName] = *limitMinutes
		} else {
			delete(limits.Limits, entry.PackageName)
		}
		limits.UpdatedAt = usage.UpdatedAt

		if err := s.UsageRepo.SaveUsageAndLimits(ctx, usage, limits); err != nil {
			return models.AppUsageEntry{}, fmt.Errorf("saving limit for %s/%s: %w", deviceID, appName, err)
		}
	} else {
		if err := s.UsageRepo.SaveUsage(ctx, usage); err != nil {
			return models.AppUsageEntry{}, fmt.Errorf("saving limit for %s/%s: %w", deviceID, appName, err)
		}
	}

	s.Notifier.NotifyAppLimitChanged(ctx, deviceID, appName, limitMinutes)
	return *entry, nil
}

// SetScreenTimeLimit ставит или снимает общий дневной лимит
// экранного времени устройства.
func (s *ScreenTimeService) SetScreenTimeLimit(ctx context.Context, deviceID string, limitMinutes *int) (models.AggregateScreenTime, error) {
	if deviceID == "" {
		return models.AggregateScreenTime{}, ErrDeviceIDRequired
	}
	if limitMinutes != nil && *limitMinutes <= 0 {
		return models.AggregateScreenTime{}, ErrInvalidLimit
	}

	usage, err := s.loadOrInitUsage(ctx, deviceID)
	if err != nil {
		return models.AggregateScreenTime{}, err
	}

	today := s.today()
	st := &usage.ScreenTime
	if st.LastResetDate != today {
		st.TotalMinutes = 0
	}
	st.LimitMinutes = limitMinutes
	st.LastResetDate = today
	st.Status = usageStatus(limitMinutes != nil && st.TotalMinutes >= *limitMinutes)
	st.TimePeriod = models.TimePeriodDaily

	usage.DeviceID = deviceID
	usage.UpdatedAt = s.Now()

	if err := s.UsageRepo.SaveUsage(ctx, usage); err != nil {
		return models.AggregateScreenTime{}, fmt.Errorf("saving screen time limit for %s: %w", deviceID, err)
	}

	s.Notifier.NotifyScreenTimeLimitChanged(ctx, deviceID, limitMinutes)
	return usage.ScreenTime, nil
}

// SetPullLimit обновляет один ключ pull-карты. Неположительный или
// отсутствующий лимит убирает ключ. Совпадающая по package встроенная
// запись получает тот же лимит в том же батче; записей с чужими
// package карта не создает.
func (s *ScreenTimeService) SetPullLimit(ctx context.Context, deviceID, packageName string, limitMinutes *int) (models.AppLimits, error) {
	if deviceID == "" {
		return models.AppLimits{}, ErrDeviceIDRequired
	}
	if packageName == "" {
		return models.AppLimits{}, ErrPackageNameRequired
	}

	limits, err := s.loadOrInitLimits(ctx, deviceID)
	if err != nil {
		return models.AppLimits{}, err
	}

	capped := limitMinutes != nil && *limitMinutes > 0
	if capped {
		limits.Limits[packageName] = *limitMinutes
	} else {
		delete(limits.Limits, packageName)
	}
	limits.DeviceID = deviceID
	limits.UpdatedAt = s.Now()

	usage, err := s.UsageRepo.FindUsage(ctx, deviceID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return models.AppLimits{}, fmt.Errorf("reading usage for %s: %w", deviceID, err)
	}
	if err == nil {
		if idx := findEntryByPackage(usage.Apps, packageName); idx >= 0 {
			var entryLimit *int
			if capped {
				entryLimit = limitMinutes
			}
			applyEntryLimit(&usage.Apps[idx], entryLimit, s.today())
			usage.UpdatedAt = limits.UpdatedAt

			if err := s.UsageRepo.SaveUsageAndLimits(ctx, usage, limits); err != nil {
				return models.AppLimits{}, fmt.Errorf("saving pull limit for %s/%s: %w", deviceID, packageName, err)
			}
			return limits, nil
		}
	}

	if err := s.UsageRepo.SaveLimits(ctx, limits); err != nil {
		return models.AppLimits{}, fmt.Errorf("saving pull limit for %s/%s: %w", deviceID, packageName, err)
	}
	return limits, nil
}

// BatchSetPullLimits заменяет pull-карту целиком: ключи вне новой
// карты пропадают, неположительные значения отбрасываются. Встроенные
// записи с известным package пере-лимитируются по новой карте, в том
// числе снятием лимита.
func (s *ScreenTimeService) BatchSetPullLimits(ctx context.Context, deviceID string, newLimits map[string]int) (models.AppLimits, error) {
	if deviceID == "" {
		return models.AppLimits{}, ErrDeviceIDRequired
	}

	filtered := make(map[string]int, len(newLimits))
	for pkg, minutes := range newLimits {
		if pkg == "" || minutes <= 0 {
			continue
		}
		filtered[pkg] = minutes
	}

	limits := models.AppLimits{
		DeviceID:  deviceID,
		Limits:    filtered,
		UpdatedAt: s.Now(),
	}

	usage, err := s.UsageRepo.FindUsage(ctx, deviceID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return models.AppLimits{}, fmt.Errorf("reading usage for %s: %w", deviceID, err)
	}
	if err == nil {
		today := s.today()
		touched := false
		for i := range usage.Apps {
			pkg := usage.Apps[i].PackageName
			if pkg == "" {
				continue
			}
			var entryLimit *int
			if minutes, ok := filtered[pkg]; ok {
				m := minutes
				entryLimit = &m
			}
			applyEntryLimit(&usage.Apps[i], entryLimit, today)
			touched = true
		}
		if touched {
			usage.UpdatedAt = limits.UpdatedAt
			if err := s.UsageRepo.SaveUsageAndLimits(ctx, usage, limits); err != nil {
				return models.AppLimits{}, fmt.Errorf("replacing pull limits for %s: %w", deviceID, err)
			}
			return limits, nil
		}
	}

	if err := s.UsageRepo.SaveLimits(ctx, limits); err != nil {
		return models.AppLimits{}, fmt.Errorf("replacing pull limits for %s: %w", deviceID, err)
	}
	return limits, nil
}

// ClearAllPullLimits удаляет pull-карту и снимает лимиты со всех
// встроенных записей с известным package. Повторный вызов безвреден.
func (s *ScreenTimeService) ClearAllPullLimits(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}

	usage, err := s.UsageRepo.FindUsage(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("reading usage for %s: %w", deviceID, err)
		}
		if err := s.UsageRepo.DeleteLimits(ctx, deviceID); err != nil {
			return fmt.Errorf("clearing pull limits for %s: %w", deviceID, err)
		}
		return nil
	}

	today := s.today()
	touched := false
	for i := range usage.Apps {
		if usage.Apps[i].PackageName == "" {
			continue
		}
		applyEntryLimit(&usage.Apps[i], nil, today)
		touched = true
	}

	if !touched {
		if err := s.UsageRepo.DeleteLimits(ctx, deviceID); err != nil {
			return fmt.Errorf("clearing pull limits for %s: %w", deviceID, err)
		}
		return nil
	}

	usage.UpdatedAt = s.Now()
	if err := s.UsageRepo.SaveUsageDeleteLimits(ctx, usage); err != nil {
		return fmt.Errorf("clearing pull limits for %s: %w", deviceID, err)
	}
	return nil
}

// GetPullLimits отдает pull-карту устройства. Отсутствующий документ
// это пустая карта, а не ошибка.
func (s *ScreenTimeService) GetPullLimits(ctx context.Context, deviceID string) (map[string]int, error) {
	limits, err := s.UsageRepo.FindLimits(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("reading pull limits for %s: %w", deviceID, err)
	}
	if limits.Limits == nil {
		return map[string]int{}, nil
	}
	return limits.Limits, nil
}

// GetUsage отдает документ экранного времени как есть, без ленивого
// сброса: сброс происходит только на записи, клиент видит lastResetDate
// и сам понимает, что счетчики вчерашние.
func (s *ScreenTimeService) GetUsage(ctx context.Context, deviceID string) (models.DeviceUsage, error) {
	usage, err := s.UsageRepo.FindUsage(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.DeviceUsage{
				DeviceID: deviceID,
				Apps:     []models.AppUsageEntry{},
				ScreenTime: models.AggregateScreenTime{
					LastResetDate: s.today(),
					Status:        models.UsageStatusActive,
					TimePeriod:    models.TimePeriodDaily,
				},
			}, nil
		}
		return models.DeviceUsage{}, fmt.Errorf("reading usage for %s: %w", deviceID, err)
	}
	return usage, nil
}

// RecordAppUsage принимает порцию использования от детского устройства,
// инкрементит счетчики с ленивым сбросом и шлет родителю уведомления
// о переходах через лимит. Уведомления уходят после успешной записи.
func (s *ScreenTimeService) RecordAppUsage(ctx context.Context, deviceID string, samples []models.AppUsageSample) (models.DeviceUsage, error) {
	if deviceID == "" {
		return models.DeviceUsage{}, ErrDeviceIDRequired
	}

	usage, err := s.loadOrInitUsage(ctx, deviceID)
	if err != nil {
		return models.DeviceUsage{}, err
	}

	today := s.today()
	totalAdded := 0

	type exceededEvent struct {
		appName      string
		usedMinutes  int
		limitMinutes int
	}
	var exceeded []exceededEvent

	for _, sample := range samples {
		if sample.AppName == "" || sample.Minutes <= 0 {
			continue
		}

		idx := findEntryByName(usage.Apps, sample.AppName)
		if idx < 0 {
			usage.Apps = append(usage.Apps, models.AppUsageEntry{
				Name:          sample.AppName,
				PackageName:   sample.PackageName,
				LastResetDate: today,
				Status:        models.UsageStatusActive,
				TimePeriod:    models.TimePeriodDaily,
			})
			idx = len(usage.Apps) - 1
		}

		entry := &usage.Apps[idx]
		if sample.PackageName != "" {
			entry.PackageName = sample.PackageName
		}
		if entry.LastResetDate != today {
			entry.UsageMinutes = 0
			entry.Blocked = false
		}

		wasBlocked := entry.Blocked
		entry.UsageMinutes += sample.Minutes
		entry.Blocked = entry.LimitMinutes != nil && entry.UsageMinutes >= *entry.LimitMinutes
		entry.LastResetDate = today
		entry.Status = usageStatus(entry.Blocked)
		entry.TimePeriod = models.TimePeriodDaily

		if !wasBlocked && entry.Blocked {
			exceeded = append(exceeded, exceededEvent{
				appName:      entry.Name,
				usedMinutes:  entry.UsageMinutes,
				limitMinutes: *entry.LimitMinutes,
			})
		}

		totalAdded += sample.Minutes
	}

	st := &usage.ScreenTime
	if st.LastResetDate != today {
		st.TotalMinutes = 0
		st.Status = models.UsageStatusActive
	}
	wasOver := st.Status == models.UsageStatusBlocked
	st.TotalMinutes += totalAdded
	nowOver := st.LimitMinutes != nil && st.TotalMinutes >= *st.LimitMinutes
	st.Status = usageStatus(nowOver)
	st.LastResetDate = today
	st.TimePeriod = models.TimePeriodDaily

	usage.DeviceID = deviceID
	usage.UpdatedAt = s.Now()

	if err := s.UsageRepo.SaveUsage(ctx, usage); err != nil {
		return models.DeviceUsage{}, fmt.Errorf("saving usage for %s: %w", deviceID, err)
	}

	for _, event := range exceeded {
		s.Notifier.NotifyAppLimitExceeded(ctx, deviceID, event.appName, event.usedMinutes, event.limitMinutes)
	}
	if !wasOver && nowOver {
		s.Notifier.NotifyScreenTimeExceeded(ctx, deviceID, st.TotalMinutes, *st.LimitMinutes)
	}

	return usage, nil
}
