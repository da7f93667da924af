package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "Preventive"
	MaintenanceTypeCorrective MaintenanceType = "Corrective"
)

func (t MaintenanceType) Label() string {
	switch t {
	case MaintenanceTypePreventive:
		return "Preventive"
	case MaintenanceTypeCorrective:
		return "Corrective"
	}
	return string(t)
}

func (t *MaintenanceType) Scan(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		b, bok := value.([]byte)
		if !bok {
			return errors.New("maintenance type must be string")
		}
		str = string(b)
	}
	switch str {
	case "Preventive":
		*t = MaintenanceTypePreventive
	case "Corrective":
		*t = MaintenanceTypeCorrective
	default:
		return fmt.Errorf("invalid maintenance type: %s", str)
	}
	return nil
}

func (t MaintenanceType) Value() (driver.Value, error) {
	return string(t), nil
}

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled MaintenanceStatus = "Scheduled"
	MaintenanceStatusCompleted MaintenanceStatus = "Completed"
)

func (s *MaintenanceStatus) Scan(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		b, bok := value.([]byte)
		if !bok {
			return errors.New("maintenance status must be string")
		}
		str = string(b)
	}
	switch str {
	case "Scheduled":
		*s = MaintenanceStatusScheduled
	case "Completed":
		*s = MaintenanceStatusCompleted
	default:
		return fmt.Errorf("invalid maintenance status: %s", str)
	}
	return nil
}

func (s MaintenanceStatus) Value() (driver.Value, error) {
	return string(s), nil
}

const (
	SyncRunStatusQueued  = "queued"
	SyncRunStatusRunning = "running"
	SyncRunStatusSuccess = "success"
	SyncRunStatusFailed  = "failed"
	SyncRunStatusPartial = "partial"
)

const (
	SyncTriggeredManual = "manual"
	SyncTriggeredRetry  = "retry"
	SyncTriggeredSystem = "system"
)
