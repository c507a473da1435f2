package points

var (
	FilesCounter  = filesCounter
	PointsCounter = pointsCounter
)
