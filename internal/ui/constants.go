package ui

// entryMinWidth keeps the numeric inputs compact in the control row.
const entryMinWidth = 72
