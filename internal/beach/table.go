package beach

// Water company identifiers. The sewage service dispatches its strategy on
// these, so they must match the adapter wiring in cmd/api.
const (
	CompanyWelshWater     = "welsh-water"
	CompanySouthWestWater = "south-west-water"
	CompanyWessexWater    = "wessex-water"
	CompanySouthernWater  = "southern-water"
)

// beaches is the static location table. Coordinates are beach centre points,
// station IDs are UK Admiralty tidal stations.
var beaches = []Beach{
	// Anglesey
	{Slug: "benllech", Name: "Benllech", Area: "Anglesey", Region: "wales", Lat: 53.319, Lon: -4.225, Facing: FacingEast, StationID: "0476A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "lligwy", Name: "Lligwy Bay", Area: "Anglesey", Region: "wales", Lat: 53.341, Lon: -4.241, Facing: FacingNortheast, StationID: "0476A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "trearddur-bay", Name: "Trearddur Bay", Area: "Anglesey", Region: "wales", Lat: 53.267, Lon: -4.617, Facing: FacingSouthwest, StationID: "0479", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "rhosneigr", Name: "Rhosneigr", Area: "Anglesey", Region: "wales", Lat: 53.228, Lon: -4.508, Facing: FacingSouthwest, StationID: "0479A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "newborough", Name: "Newborough Beach", Area: "Anglesey", Region: "wales", Lat: 53.142, Lon: -4.378, Facing: FacingSouthwest, StationID: "0480", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "llanddwyn", Name: "Llanddwyn Beach", Area: "Anglesey", Region: "wales", Lat: 53.1414, Lon: -4.4303, Facing: FacingSouthwest, StationID: "0480", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "aberffraw", Name: "Aberffraw", Area: "Anglesey", Region: "wales", Lat: 53.191, Lon: -4.463, Facing: FacingWest, StationID: "0479A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "cemaes", Name: "Cemaes Bay", Area: "Anglesey", Region: "wales", Lat: 53.414, Lon: -4.448, Facing: FacingNorth, StationID: "0477A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},

	// Llŷn Peninsula
	{Slug: "nefyn", Name: "Nefyn", Area: "Llŷn Peninsula", Region: "wales", Lat: 52.939, Lon: -4.524, Facing: FacingNorth, StationID: "0481", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "porth-dinllaen", Name: "Porth Dinllaen", Area: "Llŷn Peninsula", Region: "wales", Lat: 52.943, Lon: -4.564, Facing: FacingNorth, StationID: "0481", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "porth-oer", Name: "Porth Oer (Whistling Sands)", Area: "Llŷn Peninsula", Region: "wales", Lat: 52.878, Lon: -4.681, Facing: FacingNorthwest, StationID: "0481A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "aberdaron", Name: "Aberdaron", Area: "Llŷn Peninsula", Region: "wales", Lat: 52.804, Lon: -4.713, Facing: FacingSouthwest, StationID: "0482A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "abersoch", Name: "Abersoch", Area: "Llŷn Peninsula", Region: "wales", Lat: 52.822, Lon: -4.498, Facing: FacingSouth, StationID: "0482B", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "pwllheli", Name: "Pwllheli", Area: "Llŷn Peninsula", Region: "wales", Lat: 52.887, Lon: -4.398, Facing: FacingSouth, StationID: "0483", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "criccieth", Name: "Criccieth", Area: "Llŷn Peninsula", Region: "wales", Lat: 52.918, Lon: -4.232, Facing: FacingSouth, StationID: "0483A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},

	// Cardigan Bay north / Snowdonia coast
	{Slug: "black-rock-sands", Name: "Black Rock Sands", Area: "Porthmadog", Region: "wales", Lat: 52.901, Lon: -4.171, Facing: FacingSouthwest, StationID: "0484", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "harlech", Name: "Harlech Beach", Area: "Gwynedd", Region: "wales", Lat: 52.858, Lon: -4.109, Facing: FacingWest, StationID: "0484", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "barmouth", Name: "Barmouth", Area: "Gwynedd", Region: "wales", Lat: 52.722, Lon: -4.055, Facing: FacingWest, StationID: "0485", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "fairbourne", Name: "Fairbourne", Area: "Gwynedd", Region: "wales", Lat: 52.697, Lon: -4.047, Facing: FacingWest, StationID: "0485", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "tywyn", Name: "Tywyn", Area: "Gwynedd", Region: "wales", Lat: 52.586, Lon: -4.085, Facing: FacingWest, StationID: "0486", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "aberdovey", Name: "Aberdovey", Area: "Gwynedd", Region: "wales", Lat: 52.544, Lon: -4.057, Facing: FacingWest, StationID: "0486", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "borth", Name: "Borth", Area: "Ceredigion", Region: "wales", Lat: 52.491, Lon: -4.051, Facing: FacingWest, StationID: "0486", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},

	// Ceredigion
	{Slug: "aberystwyth", Name: "Aberystwyth", Area: "Ceredigion", Region: "wales", Lat: 52.416, Lon: -4.085, Facing: FacingWest, StationID: "0487", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "aberaeron", Name: "Aberaeron", Area: "Ceredigion", Region: "wales", Lat: 52.243, Lon: -4.259, Facing: FacingWest, StationID: "0488", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "new-quay", Name: "New Quay", Area: "Ceredigion", Region: "wales", Lat: 52.215, Lon: -4.356, Facing: FacingNorthwest, StationID: "0488", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "llangrannog", Name: "Llangrannog", Area: "Ceredigion", Region: "wales", Lat: 52.159, Lon: -4.472, Facing: FacingNorthwest, StationID: "0488", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "penbryn", Name: "Penbryn", Area: "Ceredigion", Region: "wales", Lat: 52.144, Lon: -4.504, Facing: FacingWest, StationID: "0488A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "tresaith", Name: "Tresaith", Area: "Ceredigion", Region: "wales", Lat: 52.138, Lon: -4.527, Facing: FacingWest, StationID: "0488A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "aberporth", Name: "Aberporth", Area: "Ceredigion", Region: "wales", Lat: 52.133, Lon: -4.543, Facing: FacingWest, StationID: "0488A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "mwnt", Name: "Mwnt", Area: "Ceredigion", Region: "wales", Lat: 52.130, Lon: -4.628, Facing: FacingNorthwest, StationID: "0489", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "poppit-sands", Name: "Poppit Sands", Area: "Pembrokeshire", Region: "wales", Lat: 52.102, Lon: -4.680, Facing: FacingNorth, StationID: "0489", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},

	// Pembrokeshire north
	{Slug: "newport-sands", Name: "Newport Sands", Area: "Pembrokeshire", Region: "wales", Lat: 52.033, Lon: -4.865, Facing: FacingNorth, StationID: "0490", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "pwllgwaelod", Name: "Pwllgwaelod (Dinas Island)", Area: "Pembrokeshire", Region: "wales", Lat: 52.018, Lon: -4.908, Facing: FacingNorth, StationID: "0490", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "fishguard", Name: "Fishguard", Area: "Pembrokeshire", Region: "wales", Lat: 52.012, Lon: -4.973, Facing: FacingNorth, StationID: "0490", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "abercastle", Name: "Abercastle", Area: "Pembrokeshire", Region: "wales", Lat: 51.962, Lon: -5.131, Facing: FacingNorth, StationID: "0491", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "abereiddy", Name: "Abereiddy", Area: "Pembrokeshire", Region: "wales", Lat: 51.934, Lon: -5.203, Facing: FacingWest, StationID: "0491", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},

	// Pembrokeshire, St Davids peninsula
	{Slug: "whitesands", Name: "Whitesands Bay", Area: "Pembrokeshire", Region: "wales", Lat: 51.897, Lon: -5.296, Facing: FacingWest, StationID: "0492", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "porthselau", Name: "Porthselau", Area: "Pembrokeshire", Region: "wales", Lat: 51.878, Lon: -5.274, Facing: FacingSouthwest, StationID: "0492", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "solva", Name: "Solva", Area: "Pembrokeshire", Region: "wales", Lat: 51.867, Lon: -5.185, Facing: FacingSouth, StationID: "0492A", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "newgale", Name: "Newgale", Area: "Pembrokeshire", Region: "wales", Lat: 51.838, Lon: -5.118, Facing: FacingWest, StationID: "0492B", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "druidston", Name: "Druidston Haven", Area: "Pembrokeshire", Region: "wales", Lat: 51.800, Lon: -5.111, Facing: FacingWest, StationID: "0492B", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "broad-haven-north", Name: "Broad Haven", Area: "Pembrokeshire", Region: "wales", Lat: 51.781, Lon: -5.108, Facing: FacingWest, StationID: "0492B", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "little-haven", Name: "Little Haven", Area: "Pembrokeshire", Region: "wales", Lat: 51.766, Lon: -5.109, Facing: FacingWest, StationID: "0492B", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},

	// Pembrokeshire, Marloes and Dale
	{Slug: "marloes", Name: "Marloes Sands", Area: "Pembrokeshire", Region: "wales", Lat: 51.730, Lon: -5.221, Facing: FacingSouthwest, StationID: "0493", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "martins-haven", Name: "Martin's Haven", Area: "Pembrokeshire", Region: "wales", Lat: 51.733, Lon: -5.249, Facing: FacingWest, StationID: "0493", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "westdale", Name: "Westdale Bay", Area: "Pembrokeshire", Region: "wales", Lat: 51.709, Lon: -5.179, Facing: FacingWest, StationID: "0495", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "dale", Name: "Dale", Area: "Pembrokeshire", Region: "wales", Lat: 51.702, Lon: -5.154, Facing: FacingEast, StationID: "0495", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},

	// Pembrokeshire south
	{Slug: "freshwater-west", Name: "Freshwater West", Area: "Pembrokeshire", Region: "wales", Lat: 51.653, Lon: -5.065, Facing: FacingWest, StationID: "0495", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "freshwater-east", Name: "Freshwater East", Area: "Pembrokeshire", Region: "wales", Lat: 51.642, Lon: -4.874, Facing: FacingSoutheast, StationID: "0501", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "barafundle", Name: "Barafundle Bay", Area: "Pembrokeshire", Region: "wales", Lat: 51.627, Lon: -4.917, Facing: FacingSouth, StationID: "0501", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "broad-haven-south", Name: "Broad Haven South", Area: "Pembrokeshire", Region: "wales", Lat: 51.620, Lon: -4.935, Facing: FacingSouth, StationID: "0501", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "stackpole", Name: "Stackpole Quay", Area: "Pembrokeshire", Region: "wales", Lat: 51.622, Lon: -4.899, Facing: FacingSouth, StationID: "0501", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "manorbier", Name: "Manorbier", Area: "Pembrokeshire", Region: "wales", Lat: 51.640, Lon: -4.799, Facing: FacingSouth, StationID: "0502", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "lydstep", Name: "Lydstep Haven", Area: "Pembrokeshire", Region: "wales", Lat: 51.649, Lon: -4.748, Facing: FacingSouth, StationID: "0502", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},

	// Tenby
	{Slug: "tenby-south", Name: "Tenby South Beach", Area: "Pembrokeshire", Region: "wales", Lat: 51.667, Lon: -4.702, Facing: FacingSouth, StationID: "0502", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "tenby-north", Name: "Tenby North Beach", Area: "Pembrokeshire", Region: "wales", Lat: 51.675, Lon: -4.696, Facing: FacingEast, StationID: "0502", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "tenby-castle", Name: "Tenby Castle Beach", Area: "Pembrokeshire", Region: "wales", Lat: 51.672, Lon: -4.699, Facing: FacingEast, StationID: "0502", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "saundersfoot", Name: "Saundersfoot", Area: "Pembrokeshire", Region: "wales", Lat: 51.709, Lon: -4.696, Facing: FacingEast, StationID: "0502", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "wisemans-bridge", Name: "Wiseman's Bridge", Area: "Pembrokeshire", Region: "wales", Lat: 51.720, Lon: -4.711, Facing: FacingSoutheast, StationID: "0502", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "amroth", Name: "Amroth", Area: "Pembrokeshire", Region: "wales", Lat: 51.732, Lon: -4.651, Facing: FacingSouth, StationID: "0502", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},

	// Carmarthenshire
	{Slug: "pendine", Name: "Pendine Sands", Area: "Carmarthenshire", Region: "wales", Lat: 51.762, Lon: -4.543, Facing: FacingSouth, StationID: "0504", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "llansteffan", Name: "Llansteffan", Area: "Carmarthenshire", Region: "wales", Lat: 51.769, Lon: -4.384, Facing: FacingSouth, StationID: "0504", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "cefn-sidan", Name: "Cefn Sidan", Area: "Carmarthenshire", Region: "wales", Lat: 51.706, Lon: -4.293, Facing: FacingSouthwest, StationID: "0505", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "pembrey", Name: "Pembrey", Area: "Carmarthenshire", Region: "wales", Lat: 51.692, Lon: -4.269, Facing: FacingSouth, StationID: "0505", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "burry-port", Name: "Burry Port", Area: "Carmarthenshire", Region: "wales", Lat: 51.683, Lon: -4.250, Facing: FacingSouth, StationID: "0505", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},

	// Gower Peninsula
	{Slug: "rhossili", Name: "Rhossili", Area: "Gower Peninsula", Region: "wales", Lat: 51.568, Lon: -4.291, Facing: FacingWest, StationID: "0505", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "llangennith", Name: "Llangennith", Area: "Gower Peninsula", Region: "wales", Lat: 51.594, Lon: -4.295, Facing: FacingWest, StationID: "0505", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "blue-pool", Name: "Blue Pool Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.589, Lon: -4.274, Facing: FacingWest, StationID: "0505", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "broughton", Name: "Broughton Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.610, Lon: -4.263, Facing: FacingNorthwest, StationID: "0505", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "port-eynon", Name: "Port Eynon", Area: "Gower Peninsula", Region: "wales", Lat: 51.542, Lon: -4.210, Facing: FacingSouthwest, StationID: "0505", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "oxwich", Name: "Oxwich Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.552, Lon: -4.150, Facing: FacingSouth, StationID: "0508", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "three-cliffs", Name: "Three Cliffs Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.565, Lon: -4.110, Facing: FacingSouth, StationID: "0508", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "pobbles", Name: "Pobbles Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.563, Lon: -4.095, Facing: FacingSouth, StationID: "0508", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "caswell", Name: "Caswell Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.570, Lon: -4.030, Facing: FacingSouth, StationID: "0508", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "langland", Name: "Langland Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.568, Lon: -4.009, Facing: FacingSouth, StationID: "0508", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "limeslade", Name: "Limeslade Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.567, Lon: -3.983, Facing: FacingSouth, StationID: "0508", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "bracelet-bay", Name: "Bracelet Bay", Area: "Gower Peninsula", Region: "wales", Lat: 51.566, Lon: -3.978, Facing: FacingSouth, StationID: "0508", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},

	// Swansea Bay
	{Slug: "swansea", Name: "Swansea Bay", Area: "Swansea", Region: "wales", Lat: 51.617, Lon: -3.968, Facing: FacingSouth, StationID: "0509", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},
	{Slug: "aberavon", Name: "Aberavon", Area: "Port Talbot", Region: "wales", Lat: 51.583, Lon: -3.816, Facing: FacingSouthwest, StationID: "0510", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},

	// South Wales, Bridgend to Cardiff
	{Slug: "porthcawl", Name: "Porthcawl (Coney Beach)", Area: "Bridgend", Region: "wales", Lat: 51.478, Lon: -3.691, Facing: FacingSouth, StationID: "0512", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},
	{Slug: "rest-bay", Name: "Rest Bay", Area: "Bridgend", Region: "wales", Lat: 51.491, Lon: -3.718, Facing: FacingWest, StationID: "0512", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "trecco-bay", Name: "Trecco Bay", Area: "Bridgend", Region: "wales", Lat: 51.4817, Lon: -3.6972, Facing: FacingSouth, StationID: "0512", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},
	{Slug: "pink-bay", Name: "Pink Bay (Sker)", Area: "Bridgend", Region: "wales", Lat: 51.504, Lon: -3.748, Facing: FacingWest, StationID: "0512", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "ogmore-by-sea", Name: "Ogmore-by-Sea", Area: "Vale of Glamorgan", Region: "wales", Lat: 51.460, Lon: -3.635, Facing: FacingSouth, StationID: "0512", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "southerndown", Name: "Southerndown (Dunraven Bay)", Area: "Vale of Glamorgan", Region: "wales", Lat: 51.446, Lon: -3.606, Facing: FacingSouth, StationID: "0512", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "nash-point", Name: "Nash Point", Area: "Vale of Glamorgan", Region: "wales", Lat: 51.403, Lon: -3.562, Facing: FacingSouth, StationID: "0513", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierRare},
	{Slug: "llantwit-major", Name: "Llantwit Major", Area: "Vale of Glamorgan", Region: "wales", Lat: 51.395, Lon: -3.505, Facing: FacingSouth, StationID: "0513", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierModerate},
	{Slug: "barry-island", Name: "Barry Island", Area: "Vale of Glamorgan", Region: "wales", Lat: 51.390, Lon: -3.273, Facing: FacingSouth, StationID: "0513", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},
	{Slug: "whitmore-bay", Name: "Whitmore Bay", Area: "Vale of Glamorgan", Region: "wales", Lat: 51.388, Lon: -3.263, Facing: FacingSouth, StationID: "0513", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},
	{Slug: "cold-knap", Name: "Cold Knap", Area: "Vale of Glamorgan", Region: "wales", Lat: 51.400, Lon: -3.281, Facing: FacingSouth, StationID: "0513", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},
	{Slug: "penarth", Name: "Penarth", Area: "Vale of Glamorgan", Region: "wales", Lat: 51.431, Lon: -3.172, Facing: FacingSoutheast, StationID: "0514", Company: CompanyWelshWater, CompanyName: "Welsh Water", OverflowTier: TierFrequent},

	// Cornwall south
	{Slug: "sennen", Name: "Sennen Cove", Area: "Cornwall", Region: "england", Lat: 50.071, Lon: -5.697, Facing: FacingWest, StationID: "0548", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "porthcurno", Name: "Porthcurno", Area: "Cornwall", Region: "england", Lat: 50.043, Lon: -5.655, Facing: FacingSouth, StationID: "0002", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "porthchapel", Name: "Porthchapel", Area: "Cornwall", Region: "england", Lat: 50.042, Lon: -5.637, Facing: FacingSouth, StationID: "0002", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "lamorna", Name: "Lamorna Cove", Area: "Cornwall", Region: "england", Lat: 50.059, Lon: -5.567, Facing: FacingSouth, StationID: "0002", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "penzance", Name: "Penzance", Area: "Cornwall", Region: "england", Lat: 50.116, Lon: -5.533, Facing: FacingSouth, StationID: "0002", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "marazion", Name: "Marazion", Area: "Cornwall", Region: "england", Lat: 50.125, Lon: -5.469, Facing: FacingSouth, StationID: "0002", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "porthleven", Name: "Porthleven", Area: "Cornwall", Region: "england", Lat: 50.085, Lon: -5.316, Facing: FacingSouthwest, StationID: "0002A", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "kynance", Name: "Kynance Cove", Area: "Cornwall", Region: "england", Lat: 49.975, Lon: -5.232, Facing: FacingWest, StationID: "0003", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "coverack", Name: "Coverack", Area: "Cornwall", Region: "england", Lat: 50.024, Lon: -5.096, Facing: FacingEast, StationID: "0004", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "falmouth-gyllyngvase", Name: "Gyllyngvase Beach", Area: "Cornwall", Region: "england", Lat: 50.143, Lon: -5.070, Facing: FacingSouth, StationID: "0005", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "swanpool", Name: "Swanpool", Area: "Cornwall", Region: "england", Lat: 50.139, Lon: -5.080, Facing: FacingSouth, StationID: "0005", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "maenporth", Name: "Maenporth", Area: "Cornwall", Region: "england", Lat: 50.127, Lon: -5.094, Facing: FacingSouth, StationID: "0005", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "mevagissey", Name: "Mevagissey", Area: "Cornwall", Region: "england", Lat: 50.269, Lon: -4.787, Facing: FacingSoutheast, StationID: "0007", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "fowey", Name: "Fowey (Readymoney Cove)", Area: "Cornwall", Region: "england", Lat: 50.331, Lon: -4.635, Facing: FacingSouth, StationID: "0008", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "looe", Name: "Looe", Area: "Cornwall", Region: "england", Lat: 50.353, Lon: -4.452, Facing: FacingSouth, StationID: "0011", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "whitsand", Name: "Whitsand Bay", Area: "Cornwall", Region: "england", Lat: 50.341, Lon: -4.248, Facing: FacingSouth, StationID: "0012", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},

	// Cornwall north
	{Slug: "porthmeor", Name: "Porthmeor (St Ives)", Area: "Cornwall", Region: "england", Lat: 50.217, Lon: -5.483, Facing: FacingNorth, StationID: "0547", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "hayle", Name: "Hayle (Towans)", Area: "Cornwall", Region: "england", Lat: 50.207, Lon: -5.425, Facing: FacingNorth, StationID: "0547", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "gwithian", Name: "Gwithian", Area: "Cornwall", Region: "england", Lat: 50.223, Lon: -5.393, Facing: FacingNorth, StationID: "0547", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "perranporth", Name: "Perranporth", Area: "Cornwall", Region: "england", Lat: 50.346, Lon: -5.156, Facing: FacingWest, StationID: "0546A", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "fistral", Name: "Fistral Beach", Area: "Newquay", Region: "england", Lat: 50.416, Lon: -5.104, Facing: FacingWest, StationID: "0546", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "newquay-great-western", Name: "Great Western Beach", Area: "Newquay", Region: "england", Lat: 50.415, Lon: -5.081, Facing: FacingNorth, StationID: "0546", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "watergate-bay", Name: "Watergate Bay", Area: "Cornwall", Region: "england", Lat: 50.446, Lon: -5.045, Facing: FacingWest, StationID: "0546", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "constantine", Name: "Constantine Bay", Area: "Cornwall", Region: "england", Lat: 50.530, Lon: -4.973, Facing: FacingWest, StationID: "0545", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "harlyn", Name: "Harlyn Bay", Area: "Cornwall", Region: "england", Lat: 50.548, Lon: -4.935, Facing: FacingNorth, StationID: "0545", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "padstow", Name: "Padstow", Area: "Cornwall", Region: "england", Lat: 50.541, Lon: -4.936, Facing: FacingNorth, StationID: "0545", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "polzeath", Name: "Polzeath", Area: "Cornwall", Region: "england", Lat: 50.573, Lon: -4.915, Facing: FacingNorthwest, StationID: "0545", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "bude", Name: "Bude (Summerleaze)", Area: "Cornwall", Region: "england", Lat: 50.832, Lon: -4.553, Facing: FacingWest, StationID: "0543", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},

	// Devon
	{Slug: "woolacombe", Name: "Woolacombe", Area: "Devon", Region: "england", Lat: 51.166, Lon: -4.210, Facing: FacingWest, StationID: "0535", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "croyde", Name: "Croyde Bay", Area: "Devon", Region: "england", Lat: 51.134, Lon: -4.236, Facing: FacingWest, StationID: "0535", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "saunton-sands", Name: "Saunton Sands", Area: "Devon", Region: "england", Lat: 51.113, Lon: -4.224, Facing: FacingWest, StationID: "0537", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "westward-ho", Name: "Westward Ho!", Area: "Devon", Region: "england", Lat: 51.039, Lon: -4.235, Facing: FacingNorthwest, StationID: "0536", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "salcombe", Name: "Salcombe (North Sands)", Area: "Devon", Region: "england", Lat: 50.230, Lon: -3.773, Facing: FacingSouth, StationID: "0020", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "bantham", Name: "Bantham", Area: "Devon", Region: "england", Lat: 50.277, Lon: -3.867, Facing: FacingSouthwest, StationID: "0020", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "dartmouth", Name: "Dartmouth (Castle Cove)", Area: "Devon", Region: "england", Lat: 50.345, Lon: -3.575, Facing: FacingEast, StationID: "0023", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "blackpool-sands", Name: "Blackpool Sands", Area: "Devon", Region: "england", Lat: 50.310, Lon: -3.611, Facing: FacingEast, StationID: "0023", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierRare},
	{Slug: "torquay", Name: "Torquay (Meadfoot Beach)", Area: "Devon", Region: "england", Lat: 50.458, Lon: -3.512, Facing: FacingEast, StationID: "0025", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "oddicombe", Name: "Oddicombe", Area: "Devon", Region: "england", Lat: 50.475, Lon: -3.510, Facing: FacingEast, StationID: "0025", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "paignton", Name: "Paignton", Area: "Devon", Region: "england", Lat: 50.4361, Lon: -3.5619, Facing: FacingEast, StationID: "0025", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierFrequent},
	{Slug: "teignmouth", Name: "Teignmouth", Area: "Devon", Region: "england", Lat: 50.543, Lon: -3.500, Facing: FacingEast, StationID: "0026", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "dawlish", Name: "Dawlish", Area: "Devon", Region: "england", Lat: 50.580, Lon: -3.467, Facing: FacingEast, StationID: "0026", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "exmouth", Name: "Exmouth", Area: "Devon", Region: "england", Lat: 50.614, Lon: -3.407, Facing: FacingSouth, StationID: "0027", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "sidmouth", Name: "Sidmouth", Area: "Devon", Region: "england", Lat: 50.677, Lon: -3.239, Facing: FacingSouth, StationID: "0027", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},
	{Slug: "seaton", Name: "Seaton", Area: "Devon", Region: "england", Lat: 50.704, Lon: -3.072, Facing: FacingSouth, StationID: "0028", Company: CompanySouthWestWater, CompanyName: "South West Water", OverflowTier: TierModerate},

	// Dorset
	{Slug: "lyme-regis", Name: "Lyme Regis", Area: "Dorset", Region: "england", Lat: 50.720, Lon: -2.938, Facing: FacingSouth, StationID: "0028", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierModerate},
	{Slug: "charmouth", Name: "Charmouth", Area: "Dorset", Region: "england", Lat: 50.733, Lon: -2.905, Facing: FacingSouth, StationID: "0028", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierModerate},
	{Slug: "west-bay", Name: "West Bay", Area: "Dorset", Region: "england", Lat: 50.710, Lon: -2.762, Facing: FacingSouth, StationID: "0029", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierModerate},
	{Slug: "chesil-beach", Name: "Chesil Beach", Area: "Dorset", Region: "england", Lat: 50.617, Lon: -2.548, Facing: FacingSouth, StationID: "0030", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierRare},
	{Slug: "weymouth", Name: "Weymouth", Area: "Dorset", Region: "england", Lat: 50.608, Lon: -2.454, Facing: FacingSouth, StationID: "0033", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierFrequent},
	{Slug: "lulworth-cove", Name: "Lulworth Cove", Area: "Dorset", Region: "england", Lat: 50.619, Lon: -2.249, Facing: FacingSouth, StationID: "0034", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierRare},
	{Slug: "durdle-door", Name: "Durdle Door", Area: "Dorset", Region: "england", Lat: 50.622, Lon: -2.276, Facing: FacingSouth, StationID: "0034", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierRare},
	{Slug: "swanage", Name: "Swanage", Area: "Dorset", Region: "england", Lat: 50.610, Lon: -1.953, Facing: FacingEast, StationID: "0035", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierModerate},
	{Slug: "studland", Name: "Studland Bay", Area: "Dorset", Region: "england", Lat: 50.652, Lon: -1.935, Facing: FacingEast, StationID: "0036", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierRare},
	{Slug: "sandbanks", Name: "Sandbanks", Area: "Dorset", Region: "england", Lat: 50.688, Lon: -1.945, Facing: FacingEast, StationID: "0036", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierModerate},
	{Slug: "bournemouth", Name: "Bournemouth", Area: "Dorset", Region: "england", Lat: 50.716, Lon: -1.874, Facing: FacingSouth, StationID: "0037", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierFrequent},
	{Slug: "boscombe", Name: "Boscombe", Area: "Dorset", Region: "england", Lat: 50.718, Lon: -1.842, Facing: FacingSouth, StationID: "0037", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierFrequent},

	// Hampshire and Isle of Wight
	{Slug: "christchurch", Name: "Christchurch (Avon Beach)", Area: "Dorset", Region: "england", Lat: 50.727, Lon: -1.750, Facing: FacingSouth, StationID: "0038", Company: CompanyWessexWater, CompanyName: "Wessex Water", OverflowTier: TierModerate},
	{Slug: "highcliffe", Name: "Highcliffe", Area: "Hampshire", Region: "england", Lat: 50.733, Lon: -1.719, Facing: FacingSouth, StationID: "0038", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "milford-on-sea", Name: "Milford on Sea", Area: "Hampshire", Region: "england", Lat: 50.722, Lon: -1.593, Facing: FacingSouth, StationID: "0039", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "ventnor", Name: "Ventnor", Area: "Isle of Wight", Region: "england", Lat: 50.593, Lon: -1.202, Facing: FacingSouth, StationID: "0051", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "shanklin", Name: "Shanklin", Area: "Isle of Wight", Region: "england", Lat: 50.631, Lon: -1.178, Facing: FacingEast, StationID: "0053", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "sandown", Name: "Sandown", Area: "Isle of Wight", Region: "england", Lat: 50.654, Lon: -1.152, Facing: FacingEast, StationID: "0053", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "freshwater-bay-iow", Name: "Freshwater Bay", Area: "Isle of Wight", Region: "england", Lat: 50.667, Lon: -1.518, Facing: FacingSouthwest, StationID: "0048", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierRare},
	{Slug: "ryde", Name: "Ryde", Area: "Isle of Wight", Region: "england", Lat: 50.735, Lon: -1.162, Facing: FacingNorth, StationID: "0058", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},

	// Sussex
	{Slug: "west-wittering", Name: "West Wittering", Area: "West Sussex", Region: "england", Lat: 50.772, Lon: -0.885, Facing: FacingSouth, StationID: "0068", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "bracklesham", Name: "Bracklesham", Area: "West Sussex", Region: "england", Lat: 50.770, Lon: -0.849, Facing: FacingSouth, StationID: "0069", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "bognor-regis", Name: "Bognor Regis", Area: "West Sussex", Region: "england", Lat: 50.781, Lon: -0.677, Facing: FacingSouth, StationID: "0073", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierFrequent},
	{Slug: "littlehampton", Name: "Littlehampton", Area: "West Sussex", Region: "england", Lat: 50.800, Lon: -0.548, Facing: FacingSouth, StationID: "0074", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "worthing", Name: "Worthing", Area: "West Sussex", Region: "england", Lat: 50.808, Lon: -0.372, Facing: FacingSouth, StationID: "0075", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierFrequent},
	{Slug: "shoreham", Name: "Shoreham-by-Sea", Area: "West Sussex", Region: "england", Lat: 50.828, Lon: -0.271, Facing: FacingSouth, StationID: "0081", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "hove", Name: "Hove", Area: "East Sussex", Region: "england", Lat: 50.824, Lon: -0.170, Facing: FacingSouth, StationID: "0082", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierFrequent},
	{Slug: "brighton", Name: "Brighton Beach", Area: "East Sussex", Region: "england", Lat: 50.819, Lon: -0.137, Facing: FacingSouth, StationID: "0082", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierFrequent},
	{Slug: "saltdean", Name: "Saltdean", Area: "East Sussex", Region: "england", Lat: 50.800, Lon: -0.038, Facing: FacingSouth, StationID: "0082", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "newhaven", Name: "Newhaven", Area: "East Sussex", Region: "england", Lat: 50.783, Lon: 0.051, Facing: FacingSouth, StationID: "0083", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "seaford", Name: "Seaford", Area: "East Sussex", Region: "england", Lat: 50.771, Lon: 0.103, Facing: FacingSouth, StationID: "0083", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "birling-gap", Name: "Birling Gap", Area: "East Sussex", Region: "england", Lat: 50.744, Lon: 0.202, Facing: FacingSouth, StationID: "0084", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierRare},
	{Slug: "eastbourne", Name: "Eastbourne", Area: "East Sussex", Region: "england", Lat: 50.766, Lon: 0.290, Facing: FacingSouth, StationID: "0084", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "bexhill", Name: "Bexhill-on-Sea", Area: "East Sussex", Region: "england", Lat: 50.837, Lon: 0.475, Facing: FacingSouth, StationID: "0085", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "hastings", Name: "Hastings", Area: "East Sussex", Region: "england", Lat: 50.853, Lon: 0.589, Facing: FacingSouth, StationID: "0085", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierModerate},
	{Slug: "camber", Name: "Camber Sands", Area: "East Sussex", Region: "england", Lat: 50.932, Lon: 0.805, Facing: FacingSouth, StationID: "0086", Company: CompanySouthernWater, CompanyName: "Southern Water", OverflowTier: TierRare},
}
