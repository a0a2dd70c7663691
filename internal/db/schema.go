package db

const pokemonColumns = `
    key, dex_id, name, avatar, types,
    hp, attack, defense, sp_attack, sp_defense, speed,
    total, moves
`

const selectAllPokemon = `
SELECT ` + pokemonColumns + `
FROM pokemon
ORDER BY position
`

const selectPokemonByKey = `
SELECT ` + pokemonColumns + `
FROM pokemon
WHERE key = ?
`

const selectPokemonByDexID = `
SELECT ` + pokemonColumns + `
FROM pokemon
WHERE dex_id = ?
`

const selectPokemonByDexNum = `
SELECT ` + pokemonColumns + `
FROM pokemon
WHERE dex_num = ?
ORDER BY position
LIMIT 1
`

const selectPokemonByNameKey = `
SELECT ` + pokemonColumns + `
FROM pokemon
WHERE name_key IN (?, ?)
ORDER BY position
LIMIT 1
`

const upsertPokemon = `
INSERT INTO pokemon (
    key, dex_id, dex_num, name, name_key, avatar, types,
    hp, attack, defense, sp_attack, sp_defense, speed,
    total, moves, position
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(dex_id) DO UPDATE SET
    dex_num    = excluded.dex_num,
    name       = excluded.name,
    name_key   = excluded.name_key,
    avatar     = excluded.avatar,
    types      = excluded.types,
    hp         = excluded.hp,
    attack     = excluded.attack,
    defense    = excluded.defense,
    sp_attack  = excluded.sp_attack,
    sp_defense = excluded.sp_defense,
    speed      = excluded.speed,
    total      = excluded.total,
    moves      = excluded.moves
`

const selectMaxPokemonPosition = `SELECT COALESCE(MAX(position), 0) FROM pokemon`

const countPokemon = `SELECT COUNT(*) FROM pokemon`

const moveColumns = `key, name, type, category, power, accuracy, pp, effect`

const selectAllMoves = `
SELECT ` + moveColumns + `
FROM moves
ORDER BY position
`

const selectMoveByName = `
SELECT ` + moveColumns + `
FROM moves
WHERE name = ?
`

const upsertMove = `
INSERT INTO moves (key, name, type, category, power, accuracy, pp, effect, position)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    type     = excluded.type,
    category = excluded.category,
    power    = excluded.power,
    accuracy = excluded.accuracy,
    pp       = excluded.pp,
    effect   = excluded.effect
`

const selectMaxMovePosition = `SELECT COALESCE(MAX(position), 0) FROM moves`

const countMoves = `SELECT COUNT(*) FROM moves`
