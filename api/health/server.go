package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := hrm.healthService.GetServerHealthStatus()
	gecho.Success(w,
		gecho.WithData(healthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetStorageHealth(w http.ResponseWriter, r *http.Request) {
	storageStatus := hrm.healthService.GetStorageHealthStatus(r.Context())
	if !storageStatus.Healthy() {
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("error.storage.unhealthy"),
			gecho.WithData(storageStatus),
			gecho.Send(),
		)
		return
	}
	gecho.Success(w,
		gecho.WithData(storageStatus),
		gecho.Send(),
	)
}
