package schema

import (
	"slices"
	"sort"
)

type superclass struct {
	name       string
	subclasses []string
}

// superclasses is applied in order. A superclass appended by an earlier
// entry is expanded by its own entry later in the same pass.
var superclasses = []superclass{
	{"object", []string{"unit", "device", "item", "projectile", "scenery"}},
	{"unit", []string{"vehicle", "biped"}},
	{"item", []string{"weapon", "garbage", "equipment"}},
	{"shader", []string{
		"shader_environment",
		"shader_model",
		"shader_transparent_chicago",
		"shader_transparent_chicago_extended",
		"shader_transparent_glass",
		"shader_transparent_meter",
		"shader_transparent_plasma",
		"shader_transparent_water",
	}},
	{"device", []string{"device_control", "device_light_fixture", "device_machine"}},
}

// Subclasses returns the direct subclasses of a superclass, or nil.
func Subclasses(class string) []string {
	for _, sc := range superclasses {
		if sc.name == class {
			return slices.Clone(sc.subclasses)
		}
	}
	return nil
}

// ExpandClasses appends the subclasses of every superclass present in
// classes, repeating until nothing is added. Subclasses already present
// are not appended again, so expanding an expanded list is a no-op.
func ExpandClasses(classes []string) []string {
	seen := make(map[string]bool, len(classes))
	for _, c := range classes {
		seen[c] = true
	}
	for changed := true; changed; {
		changed = false
		for _, sc := range superclasses {
			if !seen[sc.name] {
				continue
			}
			for _, sub := range sc.subclasses {
				if seen[sub] {
					continue
				}
				seen[sub] = true
				classes = append(classes, sub)
				changed = true
			}
		}
	}
	return classes
}

var classFourCCs = map[string]string{
	"actor":                               "actr",
	"actor_variant":                       "actv",
	"antenna":                             "ant!",
	"biped":                               "bipd",
	"bitmap":                              "bitm",
	"camera_track":                        "trak",
	"color_table":                         "colo",
	"continuous_damage_effect":            "cdmg",
	"contrail":                            "cont",
	"damage_effect":                       "jpt!",
	"decal":                               "deca",
	"detail_object_collection":            "dobc",
	"device":                              "devi",
	"device_control":                      "ctrl",
	"device_light_fixture":                "lifi",
	"device_machine":                      "mach",
	"dialogue":                            "udlg",
	"effect":                              "effe",
	"equipment":                           "eqip",
	"flag":                                "flag",
	"fog":                                 "fog ",
	"font":                                "font",
	"garbage":                             "garb",
	"gbxmodel":                            "mod2",
	"globals":                             "matg",
	"glow":                                "glw!",
	"grenade_hud_interface":               "grhi",
	"hud_globals":                         "hudg",
	"hud_message_text":                    "hmt ",
	"hud_number":                          "hud#",
	"input_device_defaults":               "devc",
	"item":                                "item",
	"item_collection":                     "itmc",
	"lens_flare":                          "lens",
	"light":                               "ligh",
	"light_volume":                        "mgs2",
	"lightning":                           "elec",
	"material_effects":                    "foot",
	"meter":                               "metr",
	"model":                               "mode",
	"model_animations":                    "antr",
	"model_collision_geometry":            "coll",
	"multiplayer_scenario_description":    "mply",
	"object":                              "obje",
	"particle":                            "part",
	"particle_system":                     "pctl",
	"physics":                             "phys",
	"placeholder":                         "plac",
	"point_physics":                       "pphy",
	"preferences_network_game":            "ngpr",
	"projectile":                          "proj",
	"scenario":                            "scnr",
	"scenario_structure_bsp":              "sbsp",
	"scenery":                             "scen",
	"shader":                              "shdr",
	"shader_environment":                  "senv",
	"shader_model":                        "soso",
	"shader_transparent_chicago":          "schi",
	"shader_transparent_chicago_extended": "scex",
	"shader_transparent_generic":          "sotr",
	"shader_transparent_glass":            "sgla",
	"shader_transparent_meter":            "smet",
	"shader_transparent_plasma":           "spla",
	"shader_transparent_water":            "swat",
	"sky":                                 "sky ",
	"sound":                               "snd!",
	"sound_environment":                   "snde",
	"sound_looping":                       "lsnd",
	"sound_scenery":                       "ssce",
	"spheroid":                            "boom",
	"string_list":                         "str#",
	"tag_collection":                      "tagc",
	"ui_widget_collection":                "Soul",
	"ui_widget_definition":                "DeLa",
	"unicode_string_list":                 "ustr",
	"unit":                                "unit",
	"unit_hud_interface":                  "unhi",
	"vehicle":                             "vehi",
	"virtual_keyboard":                    "vcky",
	"weapon":                              "weap",
	"weapon_hud_interface":                "wphi",
	"weather_particle_system":             "rain",
	"wind":                                "wind",
}

// ClassFourCC returns the four character code of a tag class.
func ClassFourCC(class string) (string, bool) {
	c, ok := classFourCCs[class]
	return c, ok
}

// ClassName returns the tag class with the given four character code.
func ClassName(fourCC string) (string, bool) {
	for name, c := range classFourCCs {
		if c == fourCC {
			return name, true
		}
	}
	return "", false
}

// Classes returns all known tag class names, sorted.
func Classes() []string {
	res := make([]string, 0, len(classFourCCs))
	for name := range classFourCCs {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
