package reports

// Report SQL. Totals are price times quantity. Customer-level reports
// round to 2 decimal places; region- and country-level reports, and
// the quarterly top-five totals, round to 0. The asymmetry is part of
// the report contract.
const (
	customerOrdersSQL = `
SELECT
    c.FirstName || ' ' || c.LastName AS Name,
    p.ProductName,
    o.OrderDate,
    p.ProductUnitPrice,
    o.QuantityOrdered,
    ROUND(p.ProductUnitPrice * o.QuantityOrdered, 2) AS Total
FROM OrderDetail o
JOIN Customer c ON o.CustomerID = c.CustomerID
JOIN Product p ON o.ProductID = p.ProductID
WHERE o.CustomerID = ?
ORDER BY o.OrderID`

	customerTotalSQL = `
SELECT
    c.FirstName || ' ' || c.LastName AS Name,
    ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 2) AS Total
FROM OrderDetail o
JOIN Customer c ON o.CustomerID = c.CustomerID
JOIN Product p ON o.ProductID = p.ProductID
WHERE o.CustomerID = ?
GROUP BY c.CustomerID`

	customerTotalsSQL = `
SELECT
    c.FirstName || ' ' || c.LastName AS Name,
    ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 2) AS Total
FROM OrderDetail o
JOIN Customer c ON o.CustomerID = c.CustomerID
JOIN Product p ON o.ProductID = p.ProductID
GROUP BY c.CustomerID
ORDER BY Total DESC`

	regionTotalsSQL = `
SELECT
    r.Region,
    ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 0) AS Total
FROM OrderDetail o
JOIN Product p ON o.ProductID = p.ProductID
JOIN Customer c ON o.CustomerID = c.CustomerID
JOIN Country co ON c.CountryID = co.CountryID
JOIN Region r ON co.RegionID = r.RegionID
GROUP BY r.RegionID
ORDER BY Total DESC`

	countryTotalsSQL = `
SELECT
    co.Country,
    ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 0) AS Total
FROM OrderDetail o
JOIN Product p ON o.ProductID = p.ProductID
JOIN Customer c ON o.CustomerID = c.CustomerID
JOIN Country co ON c.CountryID = co.CountryID
GROUP BY co.CountryID
ORDER BY Total DESC`

	regionCountryRankSQL = `
WITH country_totals AS (
    SELECT
        r.Region AS Region,
        co.Country AS Country,
        ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 0) AS CountryTotal,
        RANK() OVER (
            PARTITION BY r.Region
            ORDER BY ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 0) DESC
        ) AS TotalRank
    FROM OrderDetail o
    JOIN Product p ON o.ProductID = p.ProductID
    JOIN Customer c ON o.CustomerID = c.CustomerID
    JOIN Country co ON c.CountryID = co.CountryID
    JOIN Region r ON co.RegionID = r.RegionID
    GROUP BY co.CountryID
)
SELECT Region, Country, CountryTotal, TotalRank
FROM country_totals
ORDER BY Region ASC, TotalRank ASC`

	regionTopCountrySQL = `
WITH country_totals AS (
    SELECT
        r.Region AS Region,
        co.Country AS Country,
        ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 0) AS CountryTotal,
        RANK() OVER (
            PARTITION BY r.Region
            ORDER BY ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 0) DESC
        ) AS TotalRank
    FROM OrderDetail o
    JOIN Product p ON o.ProductID = p.ProductID
    JOIN Customer c ON o.CustomerID = c.CustomerID
    JOIN Country co ON c.CountryID = co.CountryID
    JOIN Region r ON co.RegionID = r.RegionID
    GROUP BY co.CountryID
)
SELECT Region, Country, CountryTotal, TotalRank
FROM country_totals
WHERE TotalRank = 1
ORDER BY Region ASC`

	quarterlyCustomerTotalsSQL = `
SELECT
    'Q' || ((CAST(strftime('%m', o.OrderDate) AS INTEGER) + 2) / 3) AS Quarter,
    CAST(strftime('%Y', o.OrderDate) AS INTEGER) AS Year,
    o.CustomerID AS CustomerID,
    ROUND(SUM(p.ProductUnitPrice * o.QuantityOrdered), 2) AS Total
FROM OrderDetail o
JOIN Product p ON o.ProductID = p.ProductID
GROUP BY Year, Quarter, o.CustomerID
ORDER BY Year ASC, Quarter ASC, CustomerID ASC`

	quarterlyTopCustomersSQL = `
WITH order_totals AS (
    SELECT
        (CAST(strftime('%m', o.OrderDate) AS INTEGER) + 2) / 3 AS QuarterNum,
        CAST(strftime('%Y', o.OrderDate) AS INTEGER) AS Year,
        o.CustomerID AS CustomerID,
        SUM(p.ProductUnitPrice * o.QuantityOrdered) AS Total
    FROM OrderDetail o
    JOIN Product p ON o.ProductID = p.ProductID
    GROUP BY Year, QuarterNum, o.CustomerID
),
ranked AS (
    SELECT
        QuarterNum,
        Year,
        CustomerID,
        Total,
        RANK() OVER (
            PARTITION BY Year, QuarterNum
            ORDER BY Total DESC
        ) AS CustomerRank
    FROM order_totals
)
SELECT 'Q' || QuarterNum AS Quarter, Year, CustomerID, ROUND(Total, 0) AS Total, CustomerRank
FROM ranked
WHERE CustomerRank <= 5
ORDER BY Year ASC, QuarterNum ASC, CustomerRank ASC`

	monthlyRankSQL = `
WITH month_totals AS (
    SELECT
        CAST(strftime('%m', o.OrderDate) AS INTEGER) AS MonthNum,
        CASE CAST(strftime('%m', o.OrderDate) AS INTEGER)
            WHEN 1 THEN 'January'
            WHEN 2 THEN 'February'
            WHEN 3 THEN 'March'
            WHEN 4 THEN 'April'
            WHEN 5 THEN 'May'
            WHEN 6 THEN 'June'
            WHEN 7 THEN 'July'
            WHEN 8 THEN 'August'
            WHEN 9 THEN 'September'
            WHEN 10 THEN 'October'
            WHEN 11 THEN 'November'
            WHEN 12 THEN 'December'
        END AS Month,
        SUM(ROUND(p.ProductUnitPrice * o.QuantityOrdered, 0)) AS Total
    FROM OrderDetail o
    JOIN Product p ON o.ProductID = p.ProductID
    GROUP BY MonthNum
),
ranked AS (
    SELECT
        Month,
        Total,
        RANK() OVER (ORDER BY Total DESC) AS TotalRank
    FROM month_totals
)
SELECT Month, Total, TotalRank
FROM ranked
ORDER BY TotalRank ASC`

	orderGapsSQL = `
WITH ordered AS (
    SELECT
        o.CustomerID,
        c.FirstName,
        c.LastName,
        co.Country,
        o.OrderDate,
        LAG(o.OrderDate) OVER (
            PARTITION BY o.CustomerID
            ORDER BY o.OrderDate
        ) AS PreviousOrderDate
    FROM OrderDetail o
    JOIN Customer c ON o.CustomerID = c.CustomerID
    JOIN Country co ON c.CountryID = co.CountryID
),
diffs AS (
    SELECT
        CustomerID,
        FirstName,
        LastName,
        Country,
        OrderDate,
        PreviousOrderDate,
        JULIANDAY(OrderDate) - JULIANDAY(PreviousOrderDate) AS DaysWithoutOrder
    FROM ordered
    WHERE PreviousOrderDate IS NOT NULL
),
ranked AS (
    SELECT
        *,
        ROW_NUMBER() OVER (
            PARTITION BY CustomerID
            ORDER BY DaysWithoutOrder DESC
        ) AS rn
    FROM diffs
)
SELECT
    CustomerID,
    FirstName,
    LastName,
    Country,
    OrderDate,
    PreviousOrderDate,
    ROUND(DaysWithoutOrder, 0) AS MaxDaysWithoutOrder
FROM ranked
WHERE rn = 1
ORDER BY MaxDaysWithoutOrder DESC, CustomerID DESC`
)
