// Package repository holds the shared query predicates used by every entity
// repository. Soft deletion and slot-blocking status are filtered here, in one
// place, so no individual query can accidentally drop them.
package repository

import (
	"assemblr/models"

	"go.mongodb.org/mongo-driver/bson"
)

// NotDeleted adds the soft-delete predicate to a filter and returns it.
func NotDeleted(filter bson.M) bson.M {
	filter["deleted"] = false
	return filter
}

// ActiveBooking narrows a booking filter to rows that occupy their time
// window: not soft-deleted, not Cancelled, not Rejected.
func ActiveBooking(filter bson.M) bson.M {
	filter = NotDeleted(filter)
	filter["status"] = bson.M{"$nin": bson.A{models.StatusCancelled, models.StatusRejected}}
	return filter
}
