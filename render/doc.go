// Package render draws a grid.Grid as text or as an image.
//
// Both renderers classify every cell and open passage into a Role (unvisited,
// visited, finalized, head, path, start, goal) using the same precedence,
// then map roles to characters or colours:
//
//	head > goal > start > path > finalized > visited > unvisited
//
// Start and goal switch to their "unreachable" roles when both are chosen
// and the overlay has no path.
//
// Text uses box-drawing ASCII with the north (+y) row at the top and can
// colour its output with gookit/color. Image implements image.Image and can
// be written as PNG with WritePNG.
package render
