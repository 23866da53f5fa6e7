package handlers_test

import (
	"net/http"
	"testing"

	"github.com/farmride/farmride-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRideDenormalizesDriver(t *testing.T) {
	db, router := setupTest(t)
	adminToken := registerAndLogin(t, router, "admin", true)
	createDriver(t, db, "Suresh Jadhav", "tractor", "MH15-TR-1234")

	w := doRequest(t, router, http.MethodPost, "/api/rides", gin.H{
		"driver_id":      1,
		"date":           "2026-09-01",
		"time":           "08:00",
		"start_location": "Nashik Market",
		"destination":    "Trimbakeshwar",
		"cargo_type":     "manure",
	}, adminToken)
	require.Equal(t, 201, w.Code, w.Body.String())

	ride := decodeBody(t, w)["ride"].(map[string]interface{})
	assert.Equal(t, "Suresh Jadhav", ride["driver_name"])
	assert.Equal(t, "tractor", ride["vehicle_type"])
	assert.Equal(t, "MH15-TR-1234", ride["vehicle_id"])
	assert.Equal(t, "available", ride["ride_status"])
	assert.Nil(t, ride["user_id"])
}

func TestCreateRideUnknownDriver(t *testing.T) {
	_, router := setupTest(t)
	adminToken := registerAndLogin(t, router, "admin", true)

	w := doRequest(t, router, http.MethodPost, "/api/rides", gin.H{
		"driver_id":      42,
		"date":           "2026-09-01",
		"time":           "08:00",
		"start_location": "Nashik Market",
		"destination":    "Trimbakeshwar",
	}, adminToken)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "Driver not found", decodeBody(t, w)["error"])
}

func TestCreateRideRejectsBadDate(t *testing.T) {
	db, router := setupTest(t)
	adminToken := registerAndLogin(t, router, "admin", true)
	createDriver(t, db, "Suresh", "tractor", "MH15-TR-1234")

	w := doRequest(t, router, http.MethodPost, "/api/rides", gin.H{
		"driver_id":      1,
		"date":           "tomorrow",
		"time":           "08:00",
		"start_location": "Nashik Market",
		"destination":    "Trimbakeshwar",
	}, adminToken)
	assert.Equal(t, 400, w.Code)
}

func TestListRidesFiltersAndOrder(t *testing.T) {
	db, router := setupTest(t)
	tractor := createDriver(t, db, "Suresh", "tractor", "MH15-TR-1234")
	truck := createDriver(t, db, "Vikram", "truck", "MH15-TK-5678")

	createRide(t, db, tractor, "2026-09-01", "08:00", models.RideStatusBooked)
	createRide(t, db, tractor, "2026-09-03", "07:00", models.RideStatusBooked)
	createRide(t, db, tractor, "2026-09-03", "09:30", models.RideStatusBooked)
	createRide(t, db, tractor, "2026-09-02", "10:00", models.RideStatusAvailable)
	createRide(t, db, truck, "2026-09-04", "06:00", models.RideStatusBooked)

	w := doRequest(t, router, http.MethodGet, "/api/rides?status=booked&vehicle_type=tractor", nil, "")
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	require.EqualValues(t, 3, body["count"])

	rides := body["rides"].([]interface{})
	var got []string
	for _, raw := range rides {
		ride := raw.(map[string]interface{})
		assert.Equal(t, "booked", ride["ride_status"])
		assert.Equal(t, "tractor", ride["vehicle_type"])
		got = append(got, ride["date"].(string)+" "+ride["time"].(string))
	}
	// Date descending, then time descending.
	assert.Equal(t, []string{"2026-09-03 09:30", "2026-09-03 07:00", "2026-09-01 08:00"}, got)
}

func TestListRidesDateFilter(t *testing.T) {
	db, router := setupTest(t)
	driver := createDriver(t, db, "Suresh", "tractor", "MH15-TR-1234")
	createRide(t, db, driver, "2026-09-01", "08:00", models.RideStatusAvailable)
	createRide(t, db, driver, "2026-09-02", "08:00", models.RideStatusAvailable)

	w := doRequest(t, router, http.MethodGet, "/api/rides?date=2026-09-01", nil, "")
	require.Equal(t, 200, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["count"])

	w = doRequest(t, router, http.MethodGet, "/api/rides?date=01-09-2026", nil, "")
	assert.Equal(t, 400, w.Code)
}

func TestBookRide(t *testing.T) {
	db, router := setupTest(t)
	farmerToken := registerAndLogin(t, router, "ramesh", false)
	driver := createDriver(t, db, "Suresh", "tractor", "MH15-TR-1234")
	ride := createRide(t, db, driver, "2026-09-01", "08:00", models.RideStatusAvailable)

	w := doRequest(t, router, http.MethodPost, "/api/rides/1/book", nil, farmerToken)
	require.Equal(t, 200, w.Code, w.Body.String())

	var booked models.Ride
	require.NoError(t, db.First(&booked, ride.ID).Error)
	assert.Equal(t, models.RideStatusBooked, booked.RideStatus)
	require.NotNil(t, booked.UserID)
	assert.EqualValues(t, 1, *booked.UserID)

	// A second booking attempt finds the ride no longer available.
	otherToken := registerAndLogin(t, router, "suresh", false)
	w = doRequest(t, router, http.MethodPost, "/api/rides/1/book", nil, otherToken)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Ride is not available for booking", decodeBody(t, w)["error"])

	// First booker is still recorded.
	require.NoError(t, db.First(&booked, ride.ID).Error)
	assert.EqualValues(t, 1, *booked.UserID)
}

func TestBookRideNotFound(t *testing.T) {
	_, router := setupTest(t)
	farmerToken := registerAndLogin(t, router, "ramesh", false)

	w := doRequest(t, router, http.MethodPost, "/api/rides/99/book", nil, farmerToken)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "Ride not found", decodeBody(t, w)["error"])
}

func TestBookRideCompletedRejected(t *testing.T) {
	db, router := setupTest(t)
	farmerToken := registerAndLogin(t, router, "ramesh", false)
	driver := createDriver(t, db, "Suresh", "tractor", "MH15-TR-1234")
	createRide(t, db, driver, "2026-09-01", "08:00", models.RideStatusCompleted)

	w := doRequest(t, router, http.MethodPost, "/api/rides/1/book", nil, farmerToken)
	assert.Equal(t, 400, w.Code)
}

// The generic update path can force a ride into booked state without the
// availability check BookRide performs. Existing clients depend on this,
// so the behavior is pinned here.
func TestUpdateRideForceBooksWithoutAvailabilityCheck(t *testing.T) {
	db, router := setupTest(t)
	firstToken := registerAndLogin(t, router, "ramesh", false)
	secondToken := registerAndLogin(t, router, "suresh", false)
	driver := createDriver(t, db, "Suresh", "tractor", "MH15-TR-1234")
	ride := createRide(t, db, driver, "2026-09-01", "08:00", models.RideStatusAvailable)

	w := doRequest(t, router, http.MethodPost, "/api/rides/1/book", nil, firstToken)
	require.Equal(t, 200, w.Code)

	// Already booked, yet the generic update re-books it for the second user.
	w = doRequest(t, router, http.MethodPut, "/api/rides/1", gin.H{
		"ride_status": "booked",
	}, secondToken)
	require.Equal(t, 200, w.Code, w.Body.String())

	var rebooked models.Ride
	require.NoError(t, db.First(&rebooked, ride.ID).Error)
	assert.Equal(t, models.RideStatusBooked, rebooked.RideStatus)
	require.NotNil(t, rebooked.UserID)
	assert.EqualValues(t, 2, *rebooked.UserID)
}

func TestUpdateRidePartial(t *testing.T) {
	db, router := setupTest(t)
	farmerToken := registerAndLogin(t, router, "ramesh", false)
	driver := createDriver(t, db, "Suresh", "tractor", "MH15-TR-1234")
	ride := createRide(t, db, driver, "2026-09-01", "08:00", models.RideStatusAvailable)

	w := doRequest(t, router, http.MethodPut, "/api/rides/1", gin.H{
		"notes":       "bring tarpaulin",
		"ride_status": "completed",
	}, farmerToken)
	require.Equal(t, 200, w.Code)

	var updated models.Ride
	require.NoError(t, db.First(&updated, ride.ID).Error)
	assert.Equal(t, "bring tarpaulin", updated.Notes)
	assert.Equal(t, models.RideStatusCompleted, updated.RideStatus)
	// Completing via update does not stamp a booking user.
	assert.Nil(t, updated.UserID)
	assert.Equal(t, "2026-09-01", updated.Date)
}

func TestDeleteRideRequiresAdmin(t *testing.T) {
	db, router := setupTest(t)
	farmerToken := registerAndLogin(t, router, "ramesh", false)
	adminToken := registerAndLogin(t, router, "admin", true)
	driver := createDriver(t, db, "Suresh", "tractor", "MH15-TR-1234")
	createRide(t, db, driver, "2026-09-01", "08:00", models.RideStatusAvailable)

	w := doRequest(t, router, http.MethodDelete, "/api/rides/1", nil, farmerToken)
	assert.Equal(t, 403, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/rides/1", nil, adminToken)
	require.Equal(t, 200, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/rides/1", nil, "")
	assert.Equal(t, 404, w.Code)
}
