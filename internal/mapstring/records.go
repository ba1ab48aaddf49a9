// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package mapstring

import (
	"github.com/mapexchange/mapex/version"
)

// FrequencySizeRichness tunes one autoplace control.
type FrequencySizeRichness struct {
	Frequency float32 `json:"frequency"`
	Size      float32 `json:"size"`
	Richness  float32 `json:"richness"`
}

// AutoplaceSetting holds per-entity placement overrides for one autoplace category.
type AutoplaceSetting struct {
	TreatMissingAsDefault bool                             `json:"treat_missing_as_default"`
	Settings              map[string]FrequencySizeRichness `json:"settings"`
}

// Orientation is the integer direction vector of a bounding box.
type Orientation struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
}

type BoundingBox struct {
	LeftTop     Position    `json:"left_top"`
	RightBottom Position    `json:"right_bottom"`
	Orientation Orientation `json:"orientation"`
}

type CliffSettings struct {
	Name              string  `json:"name"`
	Elevation0        float32 `json:"elevation_0"`
	ElevationInterval float32 `json:"elevation_interval"`
	Richness          float32 `json:"richness"`
}

// MapGenSettings controls terrain generation.
type MapGenSettings struct {
	TerrainSegmentation               float32                          `json:"terrain_segmentation"`
	Water                             float32                          `json:"water"`
	AutoplaceControls                 map[string]FrequencySizeRichness `json:"autoplace_controls"`
	AutoplaceSettings                 map[string]AutoplaceSetting      `json:"autoplace_settings"`
	DefaultEnableAllAutoplaceControls bool                             `json:"default_enable_all_autoplace_controls"`
	Seed                              uint32                           `json:"seed"`
	Width                             uint32                           `json:"width"`
	Height                            uint32                           `json:"height"`
	AreaToGenerateAtStart             BoundingBox                      `json:"area_to_generate_at_start"`
	StartingArea                      float32                          `json:"starting_area"`
	PeacefulMode                      bool                             `json:"peaceful_mode"`
	StartingPoints                    []Position                       `json:"starting_points"`
	PropertyExpressionNames           map[string]string                `json:"property_expression_names"`
	CliffSettings                     CliffSettings                    `json:"cliff_settings"`
}

type Pollution struct {
	Enabled                                 Optional[bool]    `json:"enabled"`
	DiffusionRatio                          Optional[float64] `json:"diffusion_ratio"`
	MinToDiffuse                            Optional[float64] `json:"min_to_diffuse"`
	Ageing                                  Optional[float64] `json:"ageing"`
	ExpectedMaxPerChunk                     Optional[float64] `json:"expected_max_per_chunk"`
	MinToShowPerChunk                       Optional[float64] `json:"min_to_show_per_chunk"`
	MinPollutionToDamageTrees               Optional[float64] `json:"min_pollution_to_damage_trees"`
	PollutionWithMaxForestDamage            Optional[float64] `json:"pollution_with_max_forest_damage"`
	PollutionPerTreeDamage                  Optional[float64] `json:"pollution_per_tree_damage"`
	PollutionRestoredPerTreeDamage          Optional[float64] `json:"pollution_restored_per_tree_damage"`
	MaxPollutionToRestoreTrees              Optional[float64] `json:"max_pollution_to_restore_trees"`
	EnemyAttackPollutionConsumptionModifier Optional[float64] `json:"enemy_attack_pollution_consumption_modifier"`
}

type SteeringValues struct {
	Radius                     Optional[float64] `json:"radius"`
	SeparationFactor           Optional[float64] `json:"separation_factor"`
	SeparationForce            Optional[float64] `json:"separation_force"`
	ForceUnitFuzzyGotoBehavior Optional[bool]    `json:"force_unit_fuzzy_goto_behavior"`
}

type Steering struct {
	Default SteeringValues `json:"default"`
	Moving  SteeringValues `json:"moving"`
}

type EnemyEvolution struct {
	Enabled         Optional[bool]    `json:"enabled"`
	TimeFactor      Optional[float64] `json:"time_factor"`
	DestroyFactor   Optional[float64] `json:"destroy_factor"`
	PollutionFactor Optional[float64] `json:"pollution_factor"`
}

type EnemyExpansion struct {
	Enabled                          Optional[bool]    `json:"enabled"`
	MaxExpansionDistance             Optional[uint32]  `json:"max_expansion_distance"`
	FriendlyBaseInfluenceRadius      Optional[uint32]  `json:"friendly_base_influence_radius"`
	EnemyBuildingInfluenceRadius     Optional[uint32]  `json:"enemy_building_influence_radius"`
	BuildingCoefficient              Optional[float64] `json:"building_coefficient"`
	OtherBaseCoefficient             Optional[float64] `json:"other_base_coefficient"`
	NeighbouringChunkCoefficient     Optional[float64] `json:"neighbouring_chunk_coefficient"`
	NeighbouringBaseChunkCoefficient Optional[float64] `json:"neighbouring_base_chunk_coefficient"`
	MaxCollidingTilesCoefficient     Optional[float64] `json:"max_colliding_tiles_coefficient"`
	SettlerGroupMinSize              Optional[uint32]  `json:"settler_group_min_size"`
	SettlerGroupMaxSize              Optional[uint32]  `json:"settler_group_max_size"`
	MinExpansionCooldown             Optional[uint32]  `json:"min_expansion_cooldown"`
	MaxExpansionCooldown             Optional[uint32]  `json:"max_expansion_cooldown"`
}

type UnitGroup struct {
	MinGroupGatheringTime          Optional[uint32]  `json:"min_group_gathering_time"`
	MaxGroupGatheringTime          Optional[uint32]  `json:"max_group_gathering_time"`
	MaxWaitTimeForLateMembers      Optional[uint32]  `json:"max_wait_time_for_late_members"`
	MaxGroupRadius                 Optional[float64] `json:"max_group_radius"`
	MinGroupRadius                 Optional[float64] `json:"min_group_radius"`
	MaxMemberSpeedupWhenBehind     Optional[float64] `json:"max_member_speedup_when_behind"`
	MaxMemberSlowdownWhenAhead     Optional[float64] `json:"max_member_slowdown_when_ahead"`
	MaxGroupSlowdownFactor         Optional[float64] `json:"max_group_slowdown_factor"`
	MaxGroupMemberFallbackFactor   Optional[float64] `json:"max_group_member_fallback_factor"`
	MemberDisownDistance           Optional[float64] `json:"member_disown_distance"`
	TickToleranceWhenMemberArrives Optional[uint32]  `json:"tick_tolerance_when_member_arrives"`
	MaxGatheringUnitGroups         Optional[uint32]  `json:"max_gathering_unit_groups"`
	MaxUnitGroupSize               Optional[uint32]  `json:"max_unit_group_size"`
}

type PathFinder struct {
	Fwd2BwdRatio                                  Optional[int32]     `json:"fwd2bwd_ratio"`
	GoalPressureRatio                             Optional[float64]   `json:"goal_pressure_ratio"`
	UsePathCache                                  Optional[bool]      `json:"use_path_cache"`
	MaxStepsWorkedPerTick                         Optional[float64]   `json:"max_steps_worked_per_tick"`
	MaxWorkDonePerTick                            Optional[uint32]    `json:"max_work_done_per_tick"`
	ShortCacheSize                                Optional[uint32]    `json:"short_cache_size"`
	LongCacheSize                                 Optional[uint32]    `json:"long_cache_size"`
	ShortCacheMinCacheableDistance                Optional[float64]   `json:"short_cache_min_cacheable_distance"`
	ShortCacheMinAlgoStepsToCache                 Optional[uint32]    `json:"short_cache_min_algo_steps_to_cache"`
	LongCacheMinCacheableDistance                 Optional[float64]   `json:"long_cache_min_cacheable_distance"`
	CacheMaxConnectToCacheStepsMultiplier         Optional[uint32]    `json:"cache_max_connect_to_cache_steps_multiplier"`
	CacheAcceptPathStartDistanceRatio             Optional[float64]   `json:"cache_accept_path_start_distance_ratio"`
	CacheAcceptPathEndDistanceRatio               Optional[float64]   `json:"cache_accept_path_end_distance_ratio"`
	NegativeCacheAcceptPathStartDistanceRatio     Optional[float64]   `json:"negative_cache_accept_path_start_distance_ratio"`
	NegativeCacheAcceptPathEndDistanceRatio       Optional[float64]   `json:"negative_cache_accept_path_end_distance_ratio"`
	CachePathStartDistanceRatingMultiplier        Optional[float64]   `json:"cache_path_start_distance_rating_multiplier"`
	CachePathEndDistanceRatingMultiplier          Optional[float64]   `json:"cache_path_end_distance_rating_multiplier"`
	StaleEnemyWithSameDestinationCollisionPenalty Optional[float64]   `json:"stale_enemy_with_same_destination_collision_penalty"`
	IgnoreMovingEnemyCollisionDistance            Optional[float64]   `json:"ignore_moving_enemy_collision_distance"`
	EnemyWithDifferentDestinationCollisionPenalty Optional[float64]   `json:"enemy_with_different_destination_collision_penalty"`
	GeneralEntityCollisionPenalty                 Optional[float64]   `json:"general_entity_collision_penalty"`
	GeneralEntitySubsequentCollisionPenalty       Optional[float64]   `json:"general_entity_subsequent_collision_penalty"`
	ExtendedCollisionPenalty                      Optional[float64]   `json:"extended_collision_penalty"`
	MaxClientsToAcceptAnyNewRequest               Optional[uint32]    `json:"max_clients_to_accept_any_new_request"`
	MaxClientsToAcceptShortNewRequest             Optional[uint32]    `json:"max_clients_to_accept_short_new_request"`
	DirectDistanceToConsiderShortRequest          Optional[uint32]    `json:"direct_distance_to_consider_short_request"`
	ShortRequestMaxSteps                          Optional[uint32]    `json:"short_request_max_steps"`
	ShortRequestRatio                             Optional[float64]   `json:"short_request_ratio"`
	MinStepsToCheckPathFindTermination            Optional[uint32]    `json:"min_steps_to_check_path_find_termination"`
	StartToGoalCostMultiplierToTerminatePathFind  Optional[float64]   `json:"start_to_goal_cost_multiplier_to_terminate_path_find"`
	OverloadLevels                                Optional[[]uint32]  `json:"overload_levels"`
	OverloadMultipliers                           Optional[[]float64] `json:"overload_multipliers"`
	NegativePathCacheDelayInterval                Optional[uint32]    `json:"negative_path_cache_delay_interval"`
}

// ResearchQueueSetting controls when the research queue becomes available.
type ResearchQueueSetting string

const (
	ResearchQueueAlways       ResearchQueueSetting = "always"
	ResearchQueueAfterVictory ResearchQueueSetting = "after-victory"
	ResearchQueueNever        ResearchQueueSetting = "never"
)

type DifficultySettings struct {
	RecipeDifficulty          uint8                `json:"recipe_difficulty"`
	TechnologyDifficulty      uint8                `json:"technology_difficulty"`
	TechnologyPriceMultiplier float64              `json:"technology_price_multiplier"`
	ResearchQueueSetting      ResearchQueueSetting `json:"research_queue_setting"`
}

// MapSettings controls runtime behaviour of the map.
type MapSettings struct {
	Pollution              Pollution          `json:"pollution"`
	Steering               Steering           `json:"steering"`
	EnemyEvolution         EnemyEvolution     `json:"enemy_evolution"`
	EnemyExpansion         EnemyExpansion     `json:"enemy_expansion"`
	UnitGroup              UnitGroup          `json:"unit_group"`
	PathFinder             PathFinder         `json:"path_finder"`
	MaxFailedBehaviorCount uint32             `json:"max_failed_behavior_count"`
	DifficultySettings     DifficultySettings `json:"difficulty_settings"`
}

// Exchange is a decoded map exchange string. Version and Reserved are kept for inspection but are not part of the
// encoded form, which matches the game's own table_to_json output of parse_map_exchange_string.
type Exchange struct {
	Version        version.Version `json:"-"`
	Reserved       uint8           `json:"-"`
	MapSettings    MapSettings     `json:"map_settings"`
	MapGenSettings MapGenSettings  `json:"map_gen_settings"`
	Checksum       uint32          `json:"checksum"`
}

var gameVersion = decoder[version.Version]{
	name: "version",
	read: (*Cursor).ReadVersion,
}

var frequencySizeRichnessRecord = record[FrequencySizeRichness]{
	name: "frequency_size_richness",
	fields: []field[FrequencySizeRichness]{
		required("frequency", f32, func(r *FrequencySizeRichness) *float32 { return &r.Frequency }),
		required("size", f32, func(r *FrequencySizeRichness) *float32 { return &r.Size }),
		required("richness", f32, func(r *FrequencySizeRichness) *float32 { return &r.Richness }),
	},
}

var autoplaceSettingRecord = record[AutoplaceSetting]{
	name: "autoplace_setting",
	fields: []field[AutoplaceSetting]{
		required("treat_missing_as_default", boolean, func(r *AutoplaceSetting) *bool { return &r.TreatMissingAsDefault }),
		required("settings", mapOf(str, frequencySizeRichnessRecord.decoder()),
			func(r *AutoplaceSetting) *map[string]FrequencySizeRichness { return &r.Settings }),
	},
}

var orientationRecord = record[Orientation]{
	name: "orientation",
	fields: []field[Orientation]{
		required("x", i16, func(r *Orientation) *int16 { return &r.X }),
		required("y", i16, func(r *Orientation) *int16 { return &r.Y }),
	},
}

var boundingBoxRecord = record[BoundingBox]{
	name: "bounding_box",
	fields: []field[BoundingBox]{
		required("left_top", position, func(r *BoundingBox) *Position { return &r.LeftTop }),
		required("right_bottom", position, func(r *BoundingBox) *Position { return &r.RightBottom }),
		required("orientation", orientationRecord.decoder(), func(r *BoundingBox) *Orientation { return &r.Orientation }),
	},
}

var cliffSettingsRecord = record[CliffSettings]{
	name: "cliff_settings",
	fields: []field[CliffSettings]{
		required("name", str, func(r *CliffSettings) *string { return &r.Name }),
		required("elevation_0", f32, func(r *CliffSettings) *float32 { return &r.Elevation0 }),
		required("elevation_interval", f32, func(r *CliffSettings) *float32 { return &r.ElevationInterval }),
		required("richness", f32, func(r *CliffSettings) *float32 { return &r.Richness }),
	},
}

var mapGenSettingsRecord = record[MapGenSettings]{
	name: "map_gen_settings",
	fields: []field[MapGenSettings]{
		required("terrain_segmentation", f32, func(r *MapGenSettings) *float32 { return &r.TerrainSegmentation }),
		required("water", f32, func(r *MapGenSettings) *float32 { return &r.Water }),
		required("autoplace_controls", mapOf(str, frequencySizeRichnessRecord.decoder()),
			func(r *MapGenSettings) *map[string]FrequencySizeRichness { return &r.AutoplaceControls }),
		required("autoplace_settings", mapOf(str, autoplaceSettingRecord.decoder()),
			func(r *MapGenSettings) *map[string]AutoplaceSetting { return &r.AutoplaceSettings }),
		required("default_enable_all_autoplace_controls", boolean,
			func(r *MapGenSettings) *bool { return &r.DefaultEnableAllAutoplaceControls }),
		required("seed", u32, func(r *MapGenSettings) *uint32 { return &r.Seed }),
		required("width", u32, func(r *MapGenSettings) *uint32 { return &r.Width }),
		required("height", u32, func(r *MapGenSettings) *uint32 { return &r.Height }),
		required("area_to_generate_at_start", boundingBoxRecord.decoder(),
			func(r *MapGenSettings) *BoundingBox { return &r.AreaToGenerateAtStart }),
		required("starting_area", f32, func(r *MapGenSettings) *float32 { return &r.StartingArea }),
		required("peaceful_mode", boolean, func(r *MapGenSettings) *bool { return &r.PeacefulMode }),
		required("starting_points", arrayOf(position), func(r *MapGenSettings) *[]Position { return &r.StartingPoints }),
		required("property_expression_names", mapOf(str, str),
			func(r *MapGenSettings) *map[string]string { return &r.PropertyExpressionNames }),
		required("cliff_settings", cliffSettingsRecord.decoder(), func(r *MapGenSettings) *CliffSettings { return &r.CliffSettings }),
	},
}

var pollutionRecord = record[Pollution]{
	name: "pollution",
	fields: []field[Pollution]{
		optional("enabled", boolean, func(r *Pollution) *Optional[bool] { return &r.Enabled }),
		optional("diffusion_ratio", f64, func(r *Pollution) *Optional[float64] { return &r.DiffusionRatio }),
		optional("min_to_diffuse", f64, func(r *Pollution) *Optional[float64] { return &r.MinToDiffuse }),
		optional("ageing", f64, func(r *Pollution) *Optional[float64] { return &r.Ageing }),
		optional("expected_max_per_chunk", f64, func(r *Pollution) *Optional[float64] { return &r.ExpectedMaxPerChunk }),
		optional("min_to_show_per_chunk", f64, func(r *Pollution) *Optional[float64] { return &r.MinToShowPerChunk }),
		optional("min_pollution_to_damage_trees", f64,
			func(r *Pollution) *Optional[float64] { return &r.MinPollutionToDamageTrees }),
		optional("pollution_with_max_forest_damage", f64,
			func(r *Pollution) *Optional[float64] { return &r.PollutionWithMaxForestDamage }),
		optional("pollution_per_tree_damage", f64, func(r *Pollution) *Optional[float64] { return &r.PollutionPerTreeDamage }),
		optional("pollution_restored_per_tree_damage", f64,
			func(r *Pollution) *Optional[float64] { return &r.PollutionRestoredPerTreeDamage }),
		optional("max_pollution_to_restore_trees", f64,
			func(r *Pollution) *Optional[float64] { return &r.MaxPollutionToRestoreTrees }),
		optional("enemy_attack_pollution_consumption_modifier", f64,
			func(r *Pollution) *Optional[float64] { return &r.EnemyAttackPollutionConsumptionModifier }),
	},
}

var steeringValuesRecord = record[SteeringValues]{
	name: "steering_values",
	fields: []field[SteeringValues]{
		optional("radius", f64, func(r *SteeringValues) *Optional[float64] { return &r.Radius }),
		optional("separation_factor", f64, func(r *SteeringValues) *Optional[float64] { return &r.SeparationFactor }),
		optional("separation_force", f64, func(r *SteeringValues) *Optional[float64] { return &r.SeparationForce }),
		optional("force_unit_fuzzy_goto_behavior", boolean,
			func(r *SteeringValues) *Optional[bool] { return &r.ForceUnitFuzzyGotoBehavior }),
	},
}

var steeringRecord = record[Steering]{
	name: "steering",
	fields: []field[Steering]{
		required("default", steeringValuesRecord.decoder(), func(r *Steering) *SteeringValues { return &r.Default }),
		required("moving", steeringValuesRecord.decoder(), func(r *Steering) *SteeringValues { return &r.Moving }),
	},
}

var enemyEvolutionRecord = record[EnemyEvolution]{
	name: "enemy_evolution",
	fields: []field[EnemyEvolution]{
		optional("enabled", boolean, func(r *EnemyEvolution) *Optional[bool] { return &r.Enabled }),
		optional("time_factor", f64, func(r *EnemyEvolution) *Optional[float64] { return &r.TimeFactor }),
		optional("destroy_factor", f64, func(r *EnemyEvolution) *Optional[float64] { return &r.DestroyFactor }),
		optional("pollution_factor", f64, func(r *EnemyEvolution) *Optional[float64] { return &r.PollutionFactor }),
	},
}

var enemyExpansionRecord = record[EnemyExpansion]{
	name: "enemy_expansion",
	fields: []field[EnemyExpansion]{
		optional("enabled", boolean, func(r *EnemyExpansion) *Optional[bool] { return &r.Enabled }),
		optional("max_expansion_distance", u32, func(r *EnemyExpansion) *Optional[uint32] { return &r.MaxExpansionDistance }),
		optional("friendly_base_influence_radius", u32,
			func(r *EnemyExpansion) *Optional[uint32] { return &r.FriendlyBaseInfluenceRadius }),
		optional("enemy_building_influence_radius", u32,
			func(r *EnemyExpansion) *Optional[uint32] { return &r.EnemyBuildingInfluenceRadius }),
		optional("building_coefficient", f64, func(r *EnemyExpansion) *Optional[float64] { return &r.BuildingCoefficient }),
		optional("other_base_coefficient", f64, func(r *EnemyExpansion) *Optional[float64] { return &r.OtherBaseCoefficient }),
		optional("neighbouring_chunk_coefficient", f64,
			func(r *EnemyExpansion) *Optional[float64] { return &r.NeighbouringChunkCoefficient }),
		optional("neighbouring_base_chunk_coefficient", f64,
			func(r *EnemyExpansion) *Optional[float64] { return &r.NeighbouringBaseChunkCoefficient }),
		optional("max_colliding_tiles_coefficient", f64,
			func(r *EnemyExpansion) *Optional[float64] { return &r.MaxCollidingTilesCoefficient }),
		optional("settler_group_min_size", u32, func(r *EnemyExpansion) *Optional[uint32] { return &r.SettlerGroupMinSize }),
		optional("settler_group_max_size", u32, func(r *EnemyExpansion) *Optional[uint32] { return &r.SettlerGroupMaxSize }),
		optional("min_expansion_cooldown", u32, func(r *EnemyExpansion) *Optional[uint32] { return &r.MinExpansionCooldown }),
		optional("max_expansion_cooldown", u32, func(r *EnemyExpansion) *Optional[uint32] { return &r.MaxExpansionCooldown }),
	},
}

var unitGroupRecord = record[UnitGroup]{
	name: "unit_group",
	fields: []field[UnitGroup]{
		optional("min_group_gathering_time", u32, func(r *UnitGroup) *Optional[uint32] { return &r.MinGroupGatheringTime }),
		optional("max_group_gathering_time", u32, func(r *UnitGroup) *Optional[uint32] { return &r.MaxGroupGatheringTime }),
		optional("max_wait_time_for_late_members", u32,
			func(r *UnitGroup) *Optional[uint32] { return &r.MaxWaitTimeForLateMembers }),
		optional("max_group_radius", f64, func(r *UnitGroup) *Optional[float64] { return &r.MaxGroupRadius }),
		optional("min_group_radius", f64, func(r *UnitGroup) *Optional[float64] { return &r.MinGroupRadius }),
		optional("max_member_speedup_when_behind", f64,
			func(r *UnitGroup) *Optional[float64] { return &r.MaxMemberSpeedupWhenBehind }),
		optional("max_member_slowdown_when_ahead", f64,
			func(r *UnitGroup) *Optional[float64] { return &r.MaxMemberSlowdownWhenAhead }),
		optional("max_group_slowdown_factor", f64, func(r *UnitGroup) *Optional[float64] { return &r.MaxGroupSlowdownFactor }),
		optional("max_group_member_fallback_factor", f64,
			func(r *UnitGroup) *Optional[float64] { return &r.MaxGroupMemberFallbackFactor }),
		optional("member_disown_distance", f64, func(r *UnitGroup) *Optional[float64] { return &r.MemberDisownDistance }),
		optional("tick_tolerance_when_member_arrives", u32,
			func(r *UnitGroup) *Optional[uint32] { return &r.TickToleranceWhenMemberArrives }),
		optional("max_gathering_unit_groups", u32, func(r *UnitGroup) *Optional[uint32] { return &r.MaxGatheringUnitGroups }),
		optional("max_unit_group_size", u32, func(r *UnitGroup) *Optional[uint32] { return &r.MaxUnitGroupSize }),
	},
}

var pathFinderRecord = record[PathFinder]{
	name: "path_finder",
	fields: []field[PathFinder]{
		optional("fwd2bwd_ratio", i32, func(r *PathFinder) *Optional[int32] { return &r.Fwd2BwdRatio }),
		optional("goal_pressure_ratio", f64, func(r *PathFinder) *Optional[float64] { return &r.GoalPressureRatio }),
		optional("use_path_cache", boolean, func(r *PathFinder) *Optional[bool] { return &r.UsePathCache }),
		optional("max_steps_worked_per_tick", f64, func(r *PathFinder) *Optional[float64] { return &r.MaxStepsWorkedPerTick }),
		optional("max_work_done_per_tick", u32, func(r *PathFinder) *Optional[uint32] { return &r.MaxWorkDonePerTick }),
		optional("short_cache_size", u32, func(r *PathFinder) *Optional[uint32] { return &r.ShortCacheSize }),
		optional("long_cache_size", u32, func(r *PathFinder) *Optional[uint32] { return &r.LongCacheSize }),
		optional("short_cache_min_cacheable_distance", f64,
			func(r *PathFinder) *Optional[float64] { return &r.ShortCacheMinCacheableDistance }),
		optional("short_cache_min_algo_steps_to_cache", u32,
			func(r *PathFinder) *Optional[uint32] { return &r.ShortCacheMinAlgoStepsToCache }),
		optional("long_cache_min_cacheable_distance", f64,
			func(r *PathFinder) *Optional[float64] { return &r.LongCacheMinCacheableDistance }),
		optional("cache_max_connect_to_cache_steps_multiplier", u32,
			func(r *PathFinder) *Optional[uint32] { return &r.CacheMaxConnectToCacheStepsMultiplier }),
		optional("cache_accept_path_start_distance_ratio", f64,
			func(r *PathFinder) *Optional[float64] { return &r.CacheAcceptPathStartDistanceRatio }),
		optional("cache_accept_path_end_distance_ratio", f64,
			func(r *PathFinder) *Optional[float64] { return &r.CacheAcceptPathEndDistanceRatio }),
		optional("negative_cache_accept_path_start_distance_ratio", f64,
			func(r *PathFinder) *Optional[float64] { return &r.NegativeCacheAcceptPathStartDistanceRatio }),
		optional("negative_cache_accept_path_end_distance_ratio", f64,
			func(r *PathFinder) *Optional[float64] { return &r.NegativeCacheAcceptPathEndDistanceRatio }),
		optional("cache_path_start_distance_rating_multiplier", f64,
			func(r *PathFinder) *Optional[float64] { return &r.CachePathStartDistanceRatingMultiplier }),
		optional("cache_path_end_distance_rating_multiplier", f64,
			func(r *PathFinder) *Optional[float64] { return &r.CachePathEndDistanceRatingMultiplier }),
		optional("stale_enemy_with_same_destination_collision_penalty", f64,
			func(r *PathFinder) *Optional[float64] { return &r.StaleEnemyWithSameDestinationCollisionPenalty }),
		optional("ignore_moving_enemy_collision_distance", f64,
			func(r *PathFinder) *Optional[float64] { return &r.IgnoreMovingEnemyCollisionDistance }),
		optional("enemy_with_different_destination_collision_penalty", f64,
			func(r *PathFinder) *Optional[float64] { return &r.EnemyWithDifferentDestinationCollisionPenalty }),
		optional("general_entity_collision_penalty", f64,
			func(r *PathFinder) *Optional[float64] { return &r.GeneralEntityCollisionPenalty }),
		optional("general_entity_subsequent_collision_penalty", f64,
			func(r *PathFinder) *Optional[float64] { return &r.GeneralEntitySubsequentCollisionPenalty }),
		optional("extended_collision_penalty", f64, func(r *PathFinder) *Optional[float64] { return &r.ExtendedCollisionPenalty }),
		optional("max_clients_to_accept_any_new_request", u32,
			func(r *PathFinder) *Optional[uint32] { return &r.MaxClientsToAcceptAnyNewRequest }),
		optional("max_clients_to_accept_short_new_request", u32,
			func(r *PathFinder) *Optional[uint32] { return &r.MaxClientsToAcceptShortNewRequest }),
		optional("direct_distance_to_consider_short_request", u32,
			func(r *PathFinder) *Optional[uint32] { return &r.DirectDistanceToConsiderShortRequest }),
		optional("short_request_max_steps", u32, func(r *PathFinder) *Optional[uint32] { return &r.ShortRequestMaxSteps }),
		optional("short_request_ratio", f64, func(r *PathFinder) *Optional[float64] { return &r.ShortRequestRatio }),
		optional("min_steps_to_check_path_find_termination", u32,
			func(r *PathFinder) *Optional[uint32] { return &r.MinStepsToCheckPathFindTermination }),
		optional("start_to_goal_cost_multiplier_to_terminate_path_find", f64,
			func(r *PathFinder) *Optional[float64] { return &r.StartToGoalCostMultiplierToTerminatePathFind }),
		optional("overload_levels", arrayOf(u32), func(r *PathFinder) *Optional[[]uint32] { return &r.OverloadLevels }),
		optional("overload_multipliers", arrayOf(f64), func(r *PathFinder) *Optional[[]float64] { return &r.OverloadMultipliers }),
		optional("negative_path_cache_delay_interval", u32,
			func(r *PathFinder) *Optional[uint32] { return &r.NegativePathCacheDelayInterval }),
	},
}

var difficultySettingsRecord = record[DifficultySettings]{
	name: "difficulty_settings",
	fields: []field[DifficultySettings]{
		required("recipe_difficulty", u8, func(r *DifficultySettings) *uint8 { return &r.RecipeDifficulty }),
		required("technology_difficulty", u8, func(r *DifficultySettings) *uint8 { return &r.TechnologyDifficulty }),
		required("technology_price_multiplier", f64, func(r *DifficultySettings) *float64 { return &r.TechnologyPriceMultiplier }),
		required("research_queue_setting",
			enumOf("research_queue_setting", ResearchQueueAlways, ResearchQueueAfterVictory, ResearchQueueNever),
			func(r *DifficultySettings) *ResearchQueueSetting { return &r.ResearchQueueSetting }),
	},
}

var mapSettingsRecord = record[MapSettings]{
	name: "map_settings",
	fields: []field[MapSettings]{
		required("pollution", pollutionRecord.decoder(), func(r *MapSettings) *Pollution { return &r.Pollution }),
		required("steering", steeringRecord.decoder(), func(r *MapSettings) *Steering { return &r.Steering }),
		required("enemy_evolution", enemyEvolutionRecord.decoder(), func(r *MapSettings) *EnemyEvolution { return &r.EnemyEvolution }),
		required("enemy_expansion", enemyExpansionRecord.decoder(), func(r *MapSettings) *EnemyExpansion { return &r.EnemyExpansion }),
		required("unit_group", unitGroupRecord.decoder(), func(r *MapSettings) *UnitGroup { return &r.UnitGroup }),
		required("path_finder", pathFinderRecord.decoder(), func(r *MapSettings) *PathFinder { return &r.PathFinder }),
		required("max_failed_behavior_count", u32, func(r *MapSettings) *uint32 { return &r.MaxFailedBehaviorCount }),
		required("difficulty_settings", difficultySettingsRecord.decoder(),
			func(r *MapSettings) *DifficultySettings { return &r.DifficultySettings }),
	},
}

// exchangeRecord is the payload envelope. Its wire order differs from the field order of the encoded Exchange.
var exchangeRecord = record[Exchange]{
	name: "exchange",
	fields: []field[Exchange]{
		required("version", gameVersion, func(r *Exchange) *version.Version { return &r.Version }),
		required("reserved", u8, func(r *Exchange) *uint8 { return &r.Reserved }),
		required("map_gen_settings", mapGenSettingsRecord.decoder(), func(r *Exchange) *MapGenSettings { return &r.MapGenSettings }),
		required("map_settings", mapSettingsRecord.decoder(), func(r *Exchange) *MapSettings { return &r.MapSettings }),
		required("checksum", u32, func(r *Exchange) *uint32 { return &r.Checksum }),
	},
}
