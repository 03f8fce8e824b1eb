package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Region dimension, keyed by the single-letter bulletin code.
CREATE TABLE IF NOT EXISTS Kraje (
    KodKraje TEXT PRIMARY KEY CHECK (length(KodKraje) = 1),
    NazevKraje TEXT NOT NULL
);

-- Price localities. A locality name can repeat across regions, so the
-- surrogate key is unique per (name, region) pair.
CREATE TABLE IF NOT EXISTS Lokality (
    LokalitaID INTEGER PRIMARY KEY AUTOINCREMENT,
    NazevLokality TEXT NOT NULL,
    KodKraje TEXT,
    FOREIGN KEY (KodKraje) REFERENCES Kraje(KodKraje),
    UNIQUE(NazevLokality, KodKraje)
);

CREATE TABLE IF NOT EXISTS Roky (
    RokID INTEGER PRIMARY KEY AUTOINCREMENT,
    Rok INTEGER NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS TypyDodavek (
    TypDodavkyID INTEGER PRIMARY KEY AUTOINCREMENT,
    NazevTypuDodavky TEXT NOT NULL UNIQUE,
    Popis TEXT
);

-- Fact table: one row per locality/year/delivery-type observation.
CREATE TABLE IF NOT EXISTS CenyTepla (
    DataID INTEGER PRIMARY KEY AUTOINCREMENT,
    LokalitaID INTEGER,
    RokID INTEGER,
    TypDodavkyID INTEGER,
    InstalovanyVykon REAL,
    PocetOdbernychMist INTEGER,
    PocetOdberatelu INTEGER,
    Cena REAL,
    Mnozstvi REAL,
    UhliProcento REAL,
    BiomasaProcento REAL,
    OdpadProcento REAL,
    ZemniPlynProcento REAL,
    JinaPalivaProcento REAL,
    FOREIGN KEY (LokalitaID) REFERENCES Lokality(LokalitaID),
    FOREIGN KEY (RokID) REFERENCES Roky(RokID),
    FOREIGN KEY (TypDodavkyID) REFERENCES TypyDodavek(TypDodavkyID)
);

CREATE INDEX IF NOT EXISTS idx_lokalita_rok ON CenyTepla(LokalitaID, RokID);
CREATE INDEX IF NOT EXISTS idx_typ_dodavky ON CenyTepla(TypDodavkyID);
CREATE INDEX IF NOT EXISTS idx_cena ON CenyTepla(Cena);
CREATE INDEX IF NOT EXISTS idx_mnozstvi ON CenyTepla(Mnozstvi);
`
