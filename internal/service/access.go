package service

import "github.com/MKhiriev/go-shortage-keeper/models"

// CanManage reports whether actor may see and delete shortage: admins may
// manage every record, everyone else only the records they reported.
func CanManage(actor models.Account, shortage models.Shortage) bool {
	return actor.IsAdmin || actor.Name == shortage.ReporterName
}
