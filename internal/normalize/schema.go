package normalize

// DDL for the normalized schema. Surrogate keys are assigned by the
// builders, not by SQLite, so rebuilds are byte-identical.
const (
	createRegionSQL = `
CREATE TABLE IF NOT EXISTS Region (
    RegionID integer PRIMARY KEY,
    Region   text NOT NULL
)`

	createCountrySQL = `
CREATE TABLE IF NOT EXISTS Country (
    CountryID integer PRIMARY KEY,
    Country   text NOT NULL,
    RegionID  integer NOT NULL,
    FOREIGN KEY (RegionID) REFERENCES Region (RegionID)
)`

	createCustomerSQL = `
CREATE TABLE IF NOT EXISTS Customer (
    CustomerID integer PRIMARY KEY,
    FirstName  text NOT NULL,
    LastName   text NOT NULL,
    Address    text NOT NULL,
    City       text NOT NULL,
    CountryID  integer NOT NULL,
    FOREIGN KEY (CountryID) REFERENCES Country (CountryID)
)`

	createProductCategorySQL = `
CREATE TABLE IF NOT EXISTS ProductCategory (
    ProductCategoryID          integer PRIMARY KEY,
    ProductCategory            text NOT NULL,
    ProductCategoryDescription text NOT NULL
)`

	createProductSQL = `
CREATE TABLE IF NOT EXISTS Product (
    ProductID         integer PRIMARY KEY,
    ProductName       text NOT NULL,
    ProductUnitPrice  real NOT NULL,
    ProductCategoryID integer NOT NULL,
    FOREIGN KEY (ProductCategoryID) REFERENCES ProductCategory (ProductCategoryID)
)`

	createOrderDetailSQL = `
CREATE TABLE IF NOT EXISTS OrderDetail (
    OrderID         integer PRIMARY KEY,
    CustomerID      integer NOT NULL,
    ProductID       integer NOT NULL,
    OrderDate       text NOT NULL,
    QuantityOrdered integer NOT NULL,
    FOREIGN KEY (CustomerID) REFERENCES Customer (CustomerID),
    FOREIGN KEY (ProductID) REFERENCES Product (ProductID)
)`
)
