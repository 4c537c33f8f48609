// Canonical column layout for mobile AL recordings.
//
// Watch recordings share a fixed layout: the stamp column, the motion
// and location sensors in a fixed order, then the annotation tag. Tools
// that create fresh recordings use DefaultSchema; tools that label data
// for display use SensorDisplayNames.
package typedcsv

import "slices"

// DefaultStampField is the leading timestamp column.
var DefaultStampField = []Field{
	{Name: "stamp", Type: TypeTimestamp},
}

// DefaultSensorFields lists the sensor columns in recording order.
var DefaultSensorFields = []Field{
	{Name: "yaw", Type: TypeFloat},
	{Name: "pitch", Type: TypeFloat},
	{Name: "roll", Type: TypeFloat},
	{Name: "rotation_rate_x", Type: TypeFloat},
	{Name: "rotation_rate_y", Type: TypeFloat},
	{Name: "rotation_rate_z", Type: TypeFloat},
	{Name: "user_acceleration_x", Type: TypeFloat},
	{Name: "user_acceleration_y", Type: TypeFloat},
	{Name: "user_acceleration_z", Type: TypeFloat},
	{Name: "latitude", Type: TypeFloat},
	{Name: "longitude", Type: TypeFloat},
	{Name: "altitude", Type: TypeFloat},
	{Name: "course", Type: TypeFloat},
	{Name: "speed", Type: TypeFloat},
	{Name: "horizontal_accuracy", Type: TypeFloat},
	{Name: "vertical_accuracy", Type: TypeFloat},
	{Name: "battery_state", Type: TypeText},
}

// DefaultTagFields lists the annotation columns.
var DefaultTagFields = []Field{
	{Name: "activity_query", Type: TypeText},
}

// SensorDisplayNames maps sensor columns to their display labels.
var SensorDisplayNames = map[string]string{
	"yaw":                 "Yaw",
	"pitch":               "Pitch",
	"roll":                "Roll",
	"rotation_rate_x":     "RotationRateX",
	"rotation_rate_y":     "RotationRateY",
	"rotation_rate_z":     "RotationRateZ",
	"user_acceleration_x": "UserAccelerationX",
	"user_acceleration_y": "UserAccelerationY",
	"user_acceleration_z": "UserAccelerationZ",
	"latitude":            "Latitude",
	"longitude":           "Longitude",
	"altitude":            "Altitude",
	"course":              "Course",
	"speed":               "Speed",
	"horizontal_accuracy": "HorizontalAccuracy",
	"vertical_accuracy":   "VerticalAccuracy",
}

// DefaultSchema returns the full recording layout: stamp, sensors, tags.
func DefaultSchema() Schema {
	fields := make([]Field, 0, len(DefaultStampField)+len(DefaultSensorFields)+len(DefaultTagFields))
	fields = append(fields, DefaultStampField...)
	fields = append(fields, DefaultSensorFields...)
	fields = append(fields, DefaultTagFields...)
	return Schema(slices.Clip(fields))
}
