// Package datagen expands the grammars of a [recipe.Manifest] into recipes.
//
// Each grammar resolves its tags, where a value "@name" stands for the
// static property name (a string or an array of strings), and enumerates
// every combination of tag values as a [Patch]. The last tag varies fastest.
// For every patch the grammar's template is converted to a value tree, its
// Remove edits and then its Modify edits are applied, the tree is converted
// back into a recipe, and each "%tag%" in its strings is replaced by the
// patch value of that tag.
//
// A [Generator] runs every grammar of a manifest in order and returns all
// recipes, or none if any grammar fails.
package datagen
