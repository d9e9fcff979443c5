package task

// MaxTitleLength is the hard cap on task titles. The dialogue layer truncates
// to this length before dispatch; the usecase rejects anything longer.
const MaxTitleLength = 500
