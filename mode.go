package hashext

const (
	// modeDir is the permission bits used for all dirs created by hashext
	modeDir = 0755

	// modeFile is the permission bits used for all files created by hashext
	modeFile = 0644
)
